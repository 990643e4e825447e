package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Middleware)
	router.Get("/api/v1/cases/{caseID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Two different case IDs must land on the same series
	for _, id := range []string{"9f3c", "b240"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cases/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	got := testutil.ToFloat64(
		HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/cases/{caseID}", "200"))
	assert.GreaterOrEqual(t, got, float64(2))
}

func TestMiddlewareRecordsErrorStatus(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Middleware)
	router.Get("/api/v1/cases", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cases", nil))

	got := testutil.ToFloat64(
		HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/cases", "500"))
	assert.GreaterOrEqual(t, got, float64(1))
}

func TestStatusRecorderForwardsFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}

	// The event stream handler type-asserts http.Flusher on its writer
	var flusher http.Flusher = wrapped
	flusher.Flush()

	assert.True(t, rec.Flushed)
}
