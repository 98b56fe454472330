package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jvadillo/php-mvc-tutorial/internal/domain"
	"github.com/jvadillo/php-mvc-tutorial/internal/repository/sqlite/migrations"
)

// DB wraps the SQLite handle and implements domain.Store.
type DB struct {
	SqlDB *sql.DB
	users *UserRepository
}

// New opens a SQLite database at the given path and configures it for
// use. It enables WAL mode and foreign keys. Failures to open or ping
// the database surface as domain.ConnectionError.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &domain.ConnectionError{Err: fmt.Errorf("open database: %w", err)}
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, &domain.ConnectionError{Err: fmt.Errorf("enable WAL mode: %w", err)}
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, &domain.ConnectionError{Err: fmt.Errorf("enable foreign keys: %w", err)}
	}

	// A single connection is enough for SQLite and sidesteps write contention.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, &domain.ConnectionError{Err: fmt.Errorf("ping database: %w", err)}
	}

	d := &DB{SqlDB: db}
	d.users = &UserRepository{db: db}
	return d, nil
}

// Users returns the user repository backed by this database.
func (d *DB) Users() domain.UserRepository { return d.users }

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Close closes the underlying database handle.
func (d *DB) Close() error { return d.SqlDB.Close() }
