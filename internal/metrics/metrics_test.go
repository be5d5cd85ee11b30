package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	t.Run("Routed requests are labelled with the route pattern", func(t *testing.T) {
		// Arrange
		mux := http.NewServeMux()
		mux.HandleFunc("GET /widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		handler := Middleware(mux)

		before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/widgets/{id}"))

		// Act
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/widgets/w-123", nil))

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/widgets/{id}"))
		assert.Equal(t, before+1, after, "Counter should increment under the pattern label")

		rawID := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/widgets/w-123"))
		assert.Zero(t, rawID, "Raw IDs must never become label values")
	})

	t.Run("Unmatched requests fall back to the raw path", func(t *testing.T) {
		// Arrange
		handler := Middleware(http.NewServeMux())

		// Act
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "/nowhere")))
	})

	t.Run("Status written by the handler is recorded", func(t *testing.T) {
		// Arrange
		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		handler := Middleware(mux)

		// Act
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/widgets/w-9", nil))

		// Assert
		assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("204", http.MethodDelete, "/widgets/{id}")))
	})
}
