package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction reports a request naming no registered action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidInput reports a request parameter that cannot be used
	// as sent.
	ErrInvalidInput = errors.New("invalid input")
)

// ConnectionError reports that the store could not be reached or the
// handshake failed. Unlike PersistenceError it is fatal to the
// connection, not just to the statement.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("store connection: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// PersistenceError reports a read or write that failed against an
// established connection.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
