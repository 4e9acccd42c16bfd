package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avicario/photofeed/internal/domain"
)

// allowedExtensions is the upload allow-list, keyed by lowercased filename
// extension without the dot.
var allowedExtensions = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
}

// PostService orchestrates photo uploads and feed-window listing.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// ValidateMediaType checks the original filename extension against the
// upload allow-list and returns the matching content type. This runs at
// the HTTP boundary before any bytes reach the store.
func ValidateMediaType(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q is not an accepted image type (png, jpg, jpeg, gif)", domain.ErrInvalidMediaType, ext)
	}
	return contentType, nil
}

// Create stores a new post. The image bytes arrive already validated and
// are persisted base64-encoded together with the caption.
func (s *PostService) Create(ctx context.Context, userID int64, imageBytes []byte, caption string) (*domain.Post, error) {
	if len(imageBytes) == 0 {
		return nil, fmt.Errorf("%w: image is empty", domain.ErrInvalidInput)
	}

	post := &domain.Post{
		UserID:    userID,
		ImageData: base64.StdEncoding.EncodeToString(imageBytes),
		Caption:   caption,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// GetImage returns the decoded image bytes for a post.
func (s *PostService) GetImage(ctx context.Context, postID int64) ([]byte, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(post.ImageData)
	if err != nil {
		return nil, fmt.Errorf("decode image for post %d: %w", postID, err)
	}
	return data, nil
}

// ListRecent returns the newest posts with their authors, at most limit.
func (s *PostService) ListRecent(ctx context.Context, limit int) ([]domain.PostWithAuthor, error) {
	return s.posts.ListRecent(ctx, limit)
}
