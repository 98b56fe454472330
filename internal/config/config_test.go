package config_test

import (
	"os"
	"testing"

	"github.com/jvadillo/php-mvc-tutorial/internal/config"
)

// clearEnv unsets every configuration variable for the duration of the
// test. t.Setenv registers the restore; Unsetenv makes the variable
// truly absent rather than empty.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_DRIVER", "DATABASE_PATH", "DB_HOST", "DB_PORT",
		"DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("expected default driver sqlite, got %s", cfg.DBDriver)
	}
	if cfg.DatabasePath != "users.db" {
		t.Fatalf("expected default database path users.db, got %s", cfg.DatabasePath)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Fatalf("expected default rate limit 120, got %d", cfg.RateLimitPerMinute)
	}
}

func TestLoad_PostgresCoordinates(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "users")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBHost != "db.internal" || cfg.DBUser != "app" || cfg.DBName != "users" {
		t.Fatalf("unexpected coordinates: %+v", cfg)
	}
	if cfg.DBSSLMode != "disable" {
		t.Fatalf("expected default sslmode disable, got %s", cfg.DBSSLMode)
	}
}

func TestLoad_PostgresMissingCoordinates(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for postgres driver without DB_USER/DB_NAME")
	}
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-positive rate limit")
	}
}
