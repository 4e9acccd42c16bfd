package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/avicario/photofeed/internal/domain"
)

// CommentRepository implements domain.CommentRepository using SQLite.
type CommentRepository struct {
	db *sql.DB
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (user_id, post_id, body, created_at)
		 VALUES (?, ?, ?, ?)`,
		comment.UserID, comment.PostID, comment.Body, now,
	)
	if err != nil {
		return storageErr("insert comment", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("get last insert id", err)
	}

	comment.ID = id
	comment.CreatedAt = now
	return nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64, limit int) ([]domain.CommentWithAuthor, error) {
	query := `SELECT c.id, c.user_id, c.post_id, c.body, c.created_at, u.username
		 FROM comments c
		 JOIN users u ON c.user_id = u.id
		 WHERE c.post_id = ?
		 ORDER BY c.created_at ASC, c.id ASC`
	args := []any{postID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list comments", err)
	}
	defer rows.Close()

	var comments []domain.CommentWithAuthor
	for rows.Next() {
		var c domain.CommentWithAuthor
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Body, &c.CreatedAt, &c.Username); err != nil {
			return nil, storageErr("scan comment", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate comments", err)
	}
	return comments, nil
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM comments WHERE post_id = ?", postID,
	).Scan(&count)
	if err != nil {
		return 0, storageErr("count comments", err)
	}
	return count, nil
}
