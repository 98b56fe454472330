package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/jvadillo/php-mvc-tutorial/internal/config"
	"github.com/jvadillo/php-mvc-tutorial/internal/controller"
	"github.com/jvadillo/php-mvc-tutorial/internal/dispatch"
	"github.com/jvadillo/php-mvc-tutorial/internal/domain"
	"github.com/jvadillo/php-mvc-tutorial/internal/handler"
	"github.com/jvadillo/php-mvc-tutorial/internal/metrics"
	"github.com/jvadillo/php-mvc-tutorial/internal/repository/postgres"
	"github.com/jvadillo/php-mvc-tutorial/internal/repository/sqlite"
	"github.com/jvadillo/php-mvc-tutorial/internal/service"
	"github.com/jvadillo/php-mvc-tutorial/internal/view"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, logOpts)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("store migrations applied", "driver", cfg.DBDriver)

	collector := metrics.NewCollector()
	userService := service.NewUserService(store.Users(), collector)
	ctrl := controller.New(userService)
	dispatcher := dispatch.New(ctrl.Actions())

	renderer, err := view.New()
	if err != nil {
		slog.Error("failed to load views", "error", err)
		os.Exit(1)
	}

	app := &handler.App{
		Dispatcher: dispatcher,
		Renderer:   renderer,
		Metrics:    collector,
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, app)

	limiter := handler.NewRateLimiter(
		rate.Limit(float64(cfg.RateLimitPerMinute)/60.0),
		cfg.RateLimitPerMinute,
	)
	defer limiter.Stop()

	var root http.Handler = mux
	root = limiter.Middleware(root)
	root = handler.Recovery(root)
	root = handler.Logging(root)
	root = handler.SecurityHeaders(root)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openStore(cfg *config.Config) (domain.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		return postgres.New(postgres.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
	default:
		return sqlite.New(cfg.DatabasePath)
	}
}
