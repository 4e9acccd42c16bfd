package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avicario/photofeed/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (user_id, image_data, caption, created_at)
		 VALUES (?, ?, ?, ?)`,
		post.UserID, post.ImageData, post.Caption, now,
	)
	if err != nil {
		return storageErr("insert post", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("get last insert id", err)
	}

	post.ID = id
	post.CreatedAt = now
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, image_data, caption, created_at
		 FROM posts WHERE id = ?`, id,
	).Scan(&post.ID, &post.UserID, &post.ImageData, &post.Caption, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("query post", err)
	}
	return post, nil
}

func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]domain.PostWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.user_id, p.image_data, p.caption, p.created_at, u.username
		 FROM posts p
		 JOIN users u ON p.user_id = u.id
		 ORDER BY p.created_at DESC, p.id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, storageErr("list recent posts", err)
	}
	defer rows.Close()

	var posts []domain.PostWithAuthor
	for rows.Next() {
		var p domain.PostWithAuthor
		if err := rows.Scan(&p.ID, &p.UserID, &p.ImageData, &p.Caption, &p.CreatedAt, &p.Username); err != nil {
			return nil, storageErr("scan post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate posts", err)
	}
	return posts, nil
}
