package domain

import (
	"context"
	"time"
)

// Comment is an append-only remark on a post. Comments are never edited
// or deleted.
type Comment struct {
	ID        int64
	UserID    int64
	PostID    int64
	Body      string
	CreatedAt time.Time
}

// CommentWithAuthor is a Comment joined with the author's username.
type CommentWithAuthor struct {
	Comment
	Username string
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// ListByPost returns comments for a post in creation order (ties
	// broken by id). A limit of 0 means no limit.
	ListByPost(ctx context.Context, postID int64, limit int) ([]CommentWithAuthor, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
}
