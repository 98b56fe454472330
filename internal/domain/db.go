package domain

import "context"

// Store defines lifecycle and access operations for the backing store.
// Each implementation (SQLite, Postgres, etc.) owns its own migration
// files and strategy, ensuring the entire backend is swappable.
type Store interface {
	Users() UserRepository
	Migrate(ctx context.Context) error
	Close() error
}
