// Package metrics exposes Prometheus instrumentation for the HTTP layer and
// the vulnerability store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the application
type Registry struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates the metric set on a private Prometheus registry
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "vulnmgt_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vulnmgt_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"method", "path"},
	)

	return r
}

// RegisterRecordCount exports a live gauge backed by the given count function
func (r *Registry) RegisterRecordCount(count func() int) {
	r.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "vulnmgt_vulnerabilities_total",
			Help: "Number of vulnerability records currently stored",
		},
		func() float64 { return float64(count()) },
	))
}

// Handler returns the exposition endpoint for this registry
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and duration per route
func (r *Registry) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Use the route pattern, not the raw path, to keep cardinality bounded
		path := c.Route().Path
		r.HTTPRequestsTotal.WithLabelValues(
			c.Method(), path, strconv.Itoa(c.Response().StatusCode())).Inc()
		r.HTTPRequestDuration.WithLabelValues(
			c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}
