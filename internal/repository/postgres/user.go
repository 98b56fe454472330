package postgres

import (
	"context"
	"database/sql"

	"github.com/jvadillo/php-mvc-tutorial/internal/domain"
)

// UserRepository implements domain.UserRepository using PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, age) VALUES ($1, $2) RETURNING id`,
		user.Name, user.Age,
	).Scan(&user.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "insert user", Err: err}
	}
	return nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, age FROM users ORDER BY id ASC`,
	)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "query users", Err: err}
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Age); err != nil {
			return nil, &domain.PersistenceError{Op: "scan user", Err: err}
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "iterate users", Err: err}
	}
	return users, nil
}

// compile-time interface check
var _ domain.UserRepository = (*UserRepository)(nil)
