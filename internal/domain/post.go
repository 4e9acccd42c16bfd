package domain

import (
	"context"
	"time"
)

// Post is an uploaded photo with its caption. The image bytes are stored
// in-row as base64 text; ImageData is that encoded form. A post is never
// edited or deleted once created.
type Post struct {
	ID        int64
	UserID    int64
	ImageData string // base64-encoded image bytes
	Caption   string
	CreatedAt time.Time
}

// PostWithAuthor is a Post joined with the author's username.
type PostWithAuthor struct {
	Post
	Username string
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	// ListRecent returns at most limit posts joined with their author's
	// username, newest first. There is no cursor; repeated calls may see
	// different windows as new posts arrive.
	ListRecent(ctx context.Context, limit int) ([]PostWithAuthor, error)
}
