package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/avicario/photofeed/internal/domain"
	"github.com/avicario/photofeed/internal/repository/sqlite/migrations"
)

// DB owns the process-wide SQLite connection pool and hands out
// repositories bound to it. All stores share the one pool; callers open
// it once at startup and Close it on shutdown.
type DB struct {
	SqlDB *sql.DB

	users    *UserRepository
	posts    *PostRepository
	likes    *LikeRepository
	comments *CommentRepository
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single writer connection keeps SQLite happy under concurrency.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.users = &UserRepository{db: sqlDB}
	db.posts = &PostRepository{db: sqlDB}
	db.likes = &LikeRepository{db: sqlDB}
	db.comments = &CommentRepository{db: sqlDB}
	return db, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns the user repository bound to this database.
func (db *DB) Users() *UserRepository { return db.users }

// Posts returns the post repository bound to this database.
func (db *DB) Posts() *PostRepository { return db.posts }

// Likes returns the like repository bound to this database.
func (db *DB) Likes() *LikeRepository { return db.likes }

// Comments returns the comment repository bound to this database.
func (db *DB) Comments() *CommentRepository { return db.comments }

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}

// storageErr classifies an unexplained persistence failure so callers can
// detect it with errors.Is(err, domain.ErrStorageUnavailable) while the
// underlying cause stays in the message.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
}
