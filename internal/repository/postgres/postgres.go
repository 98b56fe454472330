// Package postgres implements the store against a PostgreSQL server.
// It mirrors the sqlite package and is selected via DB_DRIVER=postgres.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"

	_ "github.com/lib/pq"

	"github.com/jvadillo/php-mvc-tutorial/internal/domain"
)

// Config holds the connection coordinates for a PostgreSQL store.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the coordinates as a postgres:// connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// DB wraps the PostgreSQL handle and implements domain.Store.
type DB struct {
	SqlDB *sql.DB
	users *UserRepository
}

// New opens a connection pool against the configured server and pings
// it. Failures to reach the server surface as domain.ConnectionError.
func New(cfg Config) (*DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, &domain.ConnectionError{Err: fmt.Errorf("open database: %w", err)}
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, &domain.ConnectionError{Err: fmt.Errorf("ping database: %w", err)}
	}

	d := &DB{SqlDB: db}
	d.users = &UserRepository{db: db}
	return d, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		age INTEGER NOT NULL DEFAULT 0
	)
`

// Users returns the user repository backed by this database.
func (d *DB) Users() domain.UserRepository { return d.users }

// Migrate creates the schema if it does not exist yet.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.SqlDB.ExecContext(ctx, schema); err != nil {
		return &domain.PersistenceError{Op: "migrate", Err: err}
	}
	return nil
}

// Close closes the underlying connection pool.
func (d *DB) Close() error { return d.SqlDB.Close() }
