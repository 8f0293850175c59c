package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/saved-papers/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := metrics.Middleware(mux)

	for _, path := range []string{"/api/saved-papers/1", "/api/saved-papers/2", "/nowhere"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, promtest.ToFloat64(metrics.requests.WithLabelValues("GET /api/saved-papers/{id}", "404")))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.requests.WithLabelValues("unmatched", "404")))
	assert.Equal(t, 2, promtest.CollectAndCount(metrics.duration))
}

func TestMetricsMiddleware_CountsPanics(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/saved-papers", func(w http.ResponseWriter, r *http.Request) {
		panic("backend exploded")
	})
	handler := Chain(metrics.Middleware(mux), RequestIDMiddleware, AccessLogMiddleware(zerolog.Nop()), RecoveryMiddleware)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/saved-papers", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.requests.WithLabelValues("POST /api/saved-papers", "500")))
	assert.Equal(t, 1, promtest.CollectAndCount(metrics.duration))
}

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	assert.Panics(t, func() { NewMetrics(reg) }, "registering twice must fail")
}
