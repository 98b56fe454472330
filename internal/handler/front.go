package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jvadillo/php-mvc-tutorial/internal/dispatch"
	"github.com/jvadillo/php-mvc-tutorial/internal/domain"
	"github.com/jvadillo/php-mvc-tutorial/internal/metrics"
	"github.com/jvadillo/php-mvc-tutorial/internal/view"
)

// App bundles the collaborators the HTTP layer needs.
type App struct {
	Dispatcher *dispatch.Dispatcher
	Renderer   *view.Renderer
	Metrics    *metrics.Collector
}

// HandleFront is the front controller: it resolves the action named in
// the query string, runs its handler, and renders the result. The
// action comes from the query parameter while named parameters come
// from the form body.
func (app *App) HandleFront(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	req := &dispatch.Request{
		Action: r.URL.Query().Get("action"),
		Params: r.PostForm,
	}

	result, err := app.Dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		app.writeError(w, r, req, err)
		return
	}

	// Render to a buffer first so a template failure never produces a
	// partial response body.
	var buf bytes.Buffer
	if err := app.Renderer.Render(&buf, result.View, result.Data); err != nil {
		slog.Error("render view", "view", result.View, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// writeError maps pipeline errors onto HTTP responses. Each error class
// of the taxonomy gets a distinct status so callers can tell a missing
// action from a failed store.
func (app *App) writeError(w http.ResponseWriter, r *http.Request, req *dispatch.Request, err error) {
	var connErr *domain.ConnectionError
	var persistErr *domain.PersistenceError

	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, domain.ErrUnknownAction):
		status, msg = http.StatusNotFound, "unknown action"
	case errors.Is(err, domain.ErrInvalidInput):
		status, msg = http.StatusBadRequest, "invalid input"
	case errors.As(err, &connErr):
		status, msg = http.StatusServiceUnavailable, "store unavailable"
	case errors.As(err, &persistErr):
		app.Metrics.RecordPersistenceError()
	}

	level := slog.LevelWarn
	if status >= 500 {
		level = slog.LevelError
	}
	slog.Log(r.Context(), level, "request failed",
		"action", req.Action,
		"status", status,
		"error", err,
	)

	http.Error(w, msg, status)
}
