package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPMetrics(t *testing.T) {
	m := NewHTTPMetrics("test-service")
	require.NotNil(t, m, "NewHTTPMetrics() should not return nil")
	assert.Equal(t, "test-service", m.ServiceName, "Service name should be stored")
}

func TestHTTPMetrics_MiddlewareAndHandler(t *testing.T) {
	m := NewHTTPMetrics("test-service")

	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/rfqs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/rfqs/abc", "/rfqs/def", "/missing"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
	}

	// The exposition endpoint should report the recorded series
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "Metrics endpoint should respond OK")
	body := rec.Body.String()

	assert.Contains(t, body, "http_requests_total", "Request counter should be exposed")
	assert.Contains(t, body, `path="/rfqs/{id}"`, "Path label should use the route pattern")
	assert.Contains(t, body, `category="2xx"`, "2xx category should be counted")
	assert.Contains(t, body, `category="4xx"`, "4xx category should be counted")
}

func TestHTTPMetrics_RecordOperation(t *testing.T) {
	m := NewHTTPMetrics("test-service")

	m.RecordOperation("rfq", "create")
	m.RecordOperation("rfq", "create")
	m.RecordOperation("quote", "add")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, `domain_operations_total{entity="rfq",operation="create",service="test-service"} 2`,
		"RFQ create operations should be counted")
	assert.Contains(t, body, `domain_operations_total{entity="quote",operation="add",service="test-service"} 1`,
		"Quote add operations should be counted")
}

func TestNewHTTPMetrics_IndependentRegistries(t *testing.T) {
	// Two instances must not clash on registration
	a := NewHTTPMetrics("service-a")
	b := NewHTTPMetrics("service-b")

	a.RecordOperation("rfq", "create")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, req)

	assert.NotContains(t, rec.Body.String(), `service="service-a"`,
		"Registries should be isolated per instance")
}
