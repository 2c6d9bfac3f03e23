// Package metrics provides prometheus instrumentation for the HTTP layer
// and domain operation counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics holds the prometheus collectors for a service. Each instance
// carries its own registry so the exposed endpoint serves exactly the
// collectors registered here.
type HTTPMetrics struct {
	ServiceName string

	registry         *prometheus.Registry
	requestCounter   *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	statusCategory   *prometheus.CounterVec
	operationCounter *prometheus.CounterVec
}

// NewHTTPMetrics creates a new metrics collector for a specific service
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{
		ServiceName: serviceName,
		registry:    prometheus.NewRegistry(),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		statusCategory: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_status_category_total",
				Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"service", "category", "method", "path"},
		),
		operationCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_operations_total",
				Help: "Total number of domain operations by entity and operation",
			},
			[]string{"service", "entity", "operation"},
		),
	}

	m.registry.MustRegister(
		m.requestCounter,
		m.requestDuration,
		m.statusCategory,
		m.operationCounter,
	)

	return m
}

// RecordOperation increments the domain operation counter, e.g.
// RecordOperation("rfq", "create") or RecordOperation("quote", "add").
func (m *HTTPMetrics) RecordOperation(entity, operation string) {
	m.operationCounter.WithLabelValues(m.ServiceName, entity, operation).Inc()
}

// incrementStatusCategory increments the category counter based on the HTTP status code
func (m *HTTPMetrics) incrementStatusCategory(status int, method, path string) {
	var category string
	switch {
	case status >= 200 && status < 300:
		category = "2xx"
	case status >= 400 && status < 500:
		category = "4xx"
	case status >= 500 && status < 600:
		category = "5xx"
	}

	if category != "" {
		m.statusCategory.WithLabelValues(m.ServiceName, category, method, path).Inc()
	}
}

// Middleware records request count, duration, and status category for every
// request. The path label uses the chi route pattern to keep cardinality
// bounded.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := ww.Status()
		statusLabel := strconv.Itoa(status)

		m.requestCounter.WithLabelValues(m.ServiceName, r.Method, path, statusLabel).Inc()
		m.requestDuration.WithLabelValues(m.ServiceName, r.Method, path, statusLabel).Observe(time.Since(start).Seconds())
		m.incrementStatusCategory(status, r.Method, path)
	})
}

// Handler returns the HTTP handler that exposes the registered metrics
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
