package handler

import (
	"net/http"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, app *App) {
	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /metrics", app.Metrics.Handler())
	mux.Handle("/", RequestMetrics(app.Metrics)(http.HandlerFunc(app.HandleFront)))
}
