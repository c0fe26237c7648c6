package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/restkata/restkata/internal/middleware"
)

// TestMetrics_Handler_CountsByRoutePattern verifies that requests are counted
// under chi's route pattern, not the concrete URL, keeping label cardinality
// bounded.
func TestMetrics_Handler_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler())
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"1", "2", "3"} {
		req := httptest.NewRequest(http.MethodGet, "/items/"+id, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	expected := strings.NewReader(`
# HELP restkata_http_requests_total Total HTTP requests by method, route pattern, and status code.
# TYPE restkata_http_requests_total counter
restkata_http_requests_total{method="GET",path="/items/{id}",status="200"} 3
`)
	require.NoError(t, promtestutil.GatherAndCompare(reg, expected, "restkata_http_requests_total"))
}

// TestMetrics_Handler_LabelsErrorStatus verifies that non-2xx responses are
// counted under their own status label.
func TestMetrics_Handler_LabelsErrorStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler())
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/items/999", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	expected := strings.NewReader(`
# HELP restkata_http_requests_total Total HTTP requests by method, route pattern, and status code.
# TYPE restkata_http_requests_total counter
restkata_http_requests_total{method="GET",path="/items/{id}",status="404"} 1
`)
	require.NoError(t, promtestutil.GatherAndCompare(reg, expected, "restkata_http_requests_total"))
}

// TestMetrics_Handler_FallsBackToURLPath verifies that without a chi route
// context the raw URL path is used as the path label.
func TestMetrics_Handler_FallsBackToURLPath(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	h := m.Handler()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	expected := strings.NewReader(`
# HELP restkata_http_requests_total Total HTTP requests by method, route pattern, and status code.
# TYPE restkata_http_requests_total counter
restkata_http_requests_total{method="GET",path="/healthz",status="200"} 1
`)
	require.NoError(t, promtestutil.GatherAndCompare(reg, expected, "restkata_http_requests_total"))
}

// TestMetrics_Handler_ObservesDuration verifies that the latency histogram
// records one observation per request.
func TestMetrics_Handler_ObservesDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	count, err := promtestutil.GatherAndCount(reg, "restkata_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
