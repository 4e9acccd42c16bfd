package service

import (
	"context"
	"fmt"

	"github.com/avicario/photofeed/internal/domain"
)

const (
	// DefaultFeedLimit bounds the feed window when the caller does not
	// ask for a specific size.
	DefaultFeedLimit = 20

	// commentPreviewSize is how many comments each feed entry carries.
	commentPreviewSize = 3
)

// FeedService assembles the denormalized feed view. It is read-only: every
// call re-derives counts and like state from the stores, so there is no
// staleness window.
type FeedService struct {
	posts    domain.PostRepository
	likes    domain.LikeRepository
	comments domain.CommentRepository
}

// NewFeedService creates a new FeedService.
func NewFeedService(posts domain.PostRepository, likes domain.LikeRepository, comments domain.CommentRepository) *FeedService {
	return &FeedService{posts: posts, likes: likes, comments: comments}
}

// BuildFeed returns the newest posts annotated with author, counts, the
// viewer's like state, and a short comment preview. If any underlying read
// fails the whole call fails; a partial feed is never returned.
func (s *FeedService) BuildFeed(ctx context.Context, viewerID int64, limit int) ([]domain.FeedEntry, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	posts, err := s.posts.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", domain.ErrFeedUnavailable, err)
	}

	entries := make([]domain.FeedEntry, 0, len(posts))
	for _, post := range posts {
		likeCount, err := s.likes.CountByPost(ctx, post.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: count likes for post %d: %v", domain.ErrFeedUnavailable, post.ID, err)
		}

		commentCount, err := s.comments.CountByPost(ctx, post.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: count comments for post %d: %v", domain.ErrFeedUnavailable, post.ID, err)
		}

		liked, err := s.likes.Exists(ctx, viewerID, post.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: like state for post %d: %v", domain.ErrFeedUnavailable, post.ID, err)
		}

		preview, err := s.comments.ListByPost(ctx, post.ID, commentPreviewSize)
		if err != nil {
			return nil, fmt.Errorf("%w: comments for post %d: %v", domain.ErrFeedUnavailable, post.ID, err)
		}

		entries = append(entries, domain.FeedEntry{
			Post:           post,
			LikeCount:      likeCount,
			CommentCount:   commentCount,
			IsLikedByYou:   liked,
			CommentPreview: preview,
		})
	}

	return entries, nil
}
