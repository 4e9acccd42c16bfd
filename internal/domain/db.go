package domain

import "context"

// Database is the lifecycle contract the composition root needs from a
// storage backend: bring the schema current, then release resources at
// shutdown. Repositories are obtained from the concrete implementation.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
