package sqlite

import (
	"context"
	"database/sql"

	"github.com/jvadillo/php-mvc-tutorial/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, age) VALUES (?, ?)`,
		user.Name, user.Age,
	)
	if err != nil {
		return &domain.PersistenceError{Op: "insert user", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return &domain.PersistenceError{Op: "read insert id", Err: err}
	}

	user.ID = id
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
