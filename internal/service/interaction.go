package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avicario/photofeed/internal/domain"
)

// InteractionService owns likes and comments. It is the only part of the
// application with a real concurrency hazard: the like toggle, which the
// repository serializes per (user, post) key.
type InteractionService struct {
	likes    domain.LikeRepository
	comments domain.CommentRepository
	posts    domain.PostRepository
}

// NewInteractionService creates a new InteractionService.
func NewInteractionService(likes domain.LikeRepository, comments domain.CommentRepository, posts domain.PostRepository) *InteractionService {
	return &InteractionService{likes: likes, comments: comments, posts: posts}
}

// ToggleLike flips the viewer's like on a post and reports the new state
// along with the exact like count after the toggle.
func (s *InteractionService) ToggleLike(ctx context.Context, userID, postID int64) (liked bool, count int, err error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return false, 0, err
	}

	liked, err = s.likes.Toggle(ctx, userID, postID)
	if err != nil {
		return false, 0, fmt.Errorf("toggle like: %w", err)
	}

	count, err = s.likes.CountByPost(ctx, postID)
	if err != nil {
		return false, 0, fmt.Errorf("count likes: %w", err)
	}
	return liked, count, nil
}

// LikeCount returns the exact number of likes on a post at call time.
func (s *InteractionService) LikeCount(ctx context.Context, postID int64) (int, error) {
	return s.likes.CountByPost(ctx, postID)
}

// IsLikedBy reports whether the user currently likes the post.
func (s *InteractionService) IsLikedBy(ctx context.Context, userID, postID int64) (bool, error) {
	return s.likes.Exists(ctx, userID, postID)
}

// AddComment appends a comment to a post. Blank comments are rejected
// after trimming.
func (s *InteractionService) AddComment(ctx context.Context, userID, postID int64, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domain.ErrEmptyComment
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		UserID: userID,
		PostID: postID,
		Body:   body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return comment, nil
}

// ListComments returns a post's comments in creation order. A limit of 0
// means all of them.
func (s *InteractionService) ListComments(ctx context.Context, postID int64, limit int) ([]domain.CommentWithAuthor, error) {
	return s.comments.ListByPost(ctx, postID, limit)
}
