package domain

import "context"

// User represents one record in the user register. A User is transient
// until the store assigns its ID on insert; after that the ID never
// changes.
type User struct {
	ID   int64
	Name string
	Age  int
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts the user and sets its store-assigned ID.
	Create(ctx context.Context, user *User) error
	// ListAll returns every persisted user ordered by ID ascending.
	// An empty store yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]User, error)
}
