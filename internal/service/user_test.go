package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jvadillo/php-mvc-tutorial/internal/domain"
	"github.com/jvadillo/php-mvc-tutorial/internal/repository/sqlite"
	"github.com/jvadillo/php-mvc-tutorial/internal/service"
)

type countingRecorder struct {
	created int
}

func (r *countingRecorder) RecordUserCreated() { r.created++ }

func newTestUserService(t *testing.T) (*service.UserService, *countingRecorder) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	rec := &countingRecorder{}
	return service.NewUserService(db.Users(), rec), rec
}

func TestUserService_Create(t *testing.T) {
	users, rec := newTestUserService(t)
	ctx := context.Background()

	user, err := users.Create(ctx, "Ana", 30)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
	if user.Name != "Ana" || user.Age != 30 {
		t.Fatalf("expected Ana/30, got %s/%d", user.Name, user.Age)
	}
	if rec.created != 1 {
		t.Fatalf("expected 1 recorded creation, got %d", rec.created)
	}
}

func TestUserService_Create_EmptyNameAllowed(t *testing.T) {
	users, _ := newTestUserService(t)

	user, err := users.Create(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
}

func TestUserService_Create_NegativeAge(t *testing.T) {
	users, rec := newTestUserService(t)

	_, err := users.Create(context.Background(), "Ana", -1)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if rec.created != 0 {
		t.Fatalf("expected no recorded creations, got %d", rec.created)
	}

	all, err := users.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected nothing persisted, got %d users", len(all))
	}
}

func TestUserService_CreateThenListAll(t *testing.T) {
	users, _ := newTestUserService(t)
	ctx := context.Background()

	created, err := users.Create(ctx, "Ana", 30)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := users.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 user, got %d", len(all))
	}

	got := all[0]
	if got.ID != created.ID || got.Name != "Ana" || got.Age != 30 {
		t.Fatalf("expected {%d Ana 30}, got %+v", created.ID, got)
	}
}

func TestUserService_ListAll_Empty(t *testing.T) {
	users, _ := newTestUserService(t)

	all, err := users.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty slice, got %d users", len(all))
	}
}
