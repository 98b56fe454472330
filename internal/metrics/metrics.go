// Package metrics collects and exposes Prometheus metrics for the
// dispatch pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records request and persistence metrics on its own
// registry.
type Collector struct {
	registry *prometheus.Registry

	requests          *prometheus.CounterVec
	duration          prometheus.Histogram
	usersCreated      prometheus.Counter
	persistenceErrors prometheus.Counter
}

// NewCollector creates a Collector with all metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "usermvc_requests_total",
			Help: "Dispatched requests by action and response status.",
		}, []string{"action", "status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "usermvc_request_duration_seconds",
			Help:    "Request handling latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "usermvc_users_created_total",
			Help: "Users persisted through the saveUser action.",
		}),
		persistenceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "usermvc_persistence_errors_total",
			Help: "Store reads or writes that failed.",
		}),
	}

	c.registry.MustRegister(
		c.requests,
		c.duration,
		c.usersCreated,
		c.persistenceErrors,
	)

	return c
}

// RecordRequest records one dispatched request.
func (c *Collector) RecordRequest(action string, status int, d time.Duration) {
	c.requests.WithLabelValues(action, strconv.Itoa(status)).Inc()
	c.duration.Observe(d.Seconds())
}

// RecordUserCreated records one persisted user.
func (c *Collector) RecordUserCreated() {
	c.usersCreated.Inc()
}

// RecordPersistenceError records one failed store operation.
func (c *Collector) RecordPersistenceError() {
	c.persistenceErrors.Inc()
}

// Gather exposes the underlying registry for tests.
func (c *Collector) Gather() prometheus.Gatherer { return c.registry }

// Handler returns the HTTP handler serving the Prometheus scrape
// endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
