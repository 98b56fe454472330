package service

import (
	"context"
	"fmt"

	"github.com/jvadillo/php-mvc-tutorial/internal/domain"
)

// Recorder receives model-level events for observability.
type Recorder interface {
	RecordUserCreated()
}

type nopRecorder struct{}

func (nopRecorder) RecordUserCreated() {}

// UserService coordinates user records against the repository.
type UserService struct {
	users    domain.UserRepository
	recorder Recorder
}

// NewUserService creates a UserService. A nil recorder disables event
// recording.
func NewUserService(users domain.UserRepository, recorder Recorder) *UserService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &UserService{users: users, recorder: recorder}
}

// Create persists a new user and returns it with the store-assigned ID.
// A negative age is rejected rather than coerced; an absent age defaults
// to zero upstream.
func (s *UserService) Create(ctx context.Context, name string, age int) (*domain.User, error) {
	if age < 0 {
		return nil, fmt.Errorf("age must not be negative: %w", domain.ErrInvalidInput)
	}

	user := &domain.User{Name: name, Age: age}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.recorder.RecordUserCreated()
	return user, nil
}

// ListAll returns every persisted user in identity order.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}
