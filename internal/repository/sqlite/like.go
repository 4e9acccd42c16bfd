package sqlite

import (
	"context"
	"database/sql"
	"time"
)

// LikeRepository implements domain.LikeRepository using SQLite.
type LikeRepository struct {
	db *sql.DB
}

// Toggle flips the like state for (userID, postID) inside one transaction,
// so the delete-or-insert pair is atomic rather than check-then-act. The
// UNIQUE(user_id, post_id) index rejects a duplicate row if an insert ever
// races past the delete.
func (r *LikeRepository) Toggle(ctx context.Context, userID, postID int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, storageErr("begin toggle", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"DELETE FROM likes WHERE user_id = ? AND post_id = ?", userID, postID)
	if err != nil {
		return false, storageErr("delete like", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("rows affected", err)
	}

	if deleted > 0 {
		if err := tx.Commit(); err != nil {
			return false, storageErr("commit unlike", err)
		}
		return false, nil
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, ?)",
		userID, postID, time.Now().UTC())
	if err != nil {
		if isUniqueConstraintError(err) {
			// Lost a race with a concurrent toggle; the like already
			// exists, so this call observes the liked state.
			return true, nil
		}
		return false, storageErr("insert like", err)
	}

	if err := tx.Commit(); err != nil {
		return false, storageErr("commit like", err)
	}
	return true, nil
}

func (r *LikeRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM likes WHERE post_id = ?", postID,
	).Scan(&count)
	if err != nil {
		return 0, storageErr("count likes", err)
	}
	return count, nil
}

func (r *LikeRepository) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = ? AND post_id = ?)",
		userID, postID,
	).Scan(&exists)
	if err != nil {
		return false, storageErr("check like", err)
	}
	return exists, nil
}
