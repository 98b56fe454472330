// Package config loads the application configuration from the
// environment. It is read once at startup and treated as immutable.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Store selection and coordinates. The sqlite driver only needs
	// DatabasePath; the postgres driver uses the DB_* coordinates.
	DBDriver     string `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"users.db"`
	DBHost       string `env:"DB_HOST" envDefault:"localhost"`
	DBPort       string `env:"DB_PORT" envDefault:"5432"`
	DBUser       string `env:"DB_USER"`
	DBPassword   string `env:"DB_PASSWORD"`
	DBName       string `env:"DB_NAME"`
	DBSSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		var missing []string
		if cfg.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
		if cfg.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("postgres driver requires %v", missing)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", cfg.RateLimitPerMinute)
	}

	return cfg, nil
}
