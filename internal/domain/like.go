package domain

import (
	"context"
	"time"
)

// Like marks that a user likes a post. Its identity is the
// (UserID, PostID) pair; at most one row exists per pair.
type Like struct {
	UserID    int64
	PostID    int64
	CreatedAt time.Time
}

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	// Toggle flips the like state for (userID, postID) atomically and
	// reports the resulting state: true if the like now exists, false if
	// it was removed. Concurrent toggles for the same pair are serialized.
	Toggle(ctx context.Context, userID, postID int64) (bool, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
	Exists(ctx context.Context, userID, postID int64) (bool, error)
}
