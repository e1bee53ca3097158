package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-hub/internal/http/metric"
	"github.com/tuanvumaihuynh/inventory-hub/internal/http/middleware"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/correlationid"
)

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestRecoverer(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("Should answer 500 after a panic", func(t *testing.T) {
		h := middleware.Recoverer(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		resp := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.JSONEq(t,
			`{"success":false,"code":"INTERNAL_SERVER_ERROR","message":"an unknown error occurred"}`,
			resp.Body.String())
	})

	t.Run("Should keep a response already written", func(t *testing.T) {
		h := middleware.Recoverer(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			panic("late")
		}))

		resp := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusAccepted, resp.Code)
		assert.Empty(t, resp.Body.String())
	})

	t.Run("Should re-panic on abort", func(t *testing.T) {
		h := middleware.Recoverer(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.Panics(t, func() {
			serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestCorrelationID(t *testing.T) {
	var seen string
	h := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = correlationid.FromContext(r.Context())
	}))

	t.Run("Should reuse the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(correlationid.Header, "abc")

		resp := serve(h, req)
		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", resp.Header().Get(correlationid.Header))
	})

	t.Run("Should mint an id when absent", func(t *testing.T) {
		resp := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, resp.Header().Get(correlationid.Header))
	})
}

func TestMetrics(t *testing.T) {
	m := metric.New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(middleware.Metrics(m))
	r.Get("/api/products/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	serve(r, httptest.NewRequest(http.MethodGet, "/api/products/a", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/products/b", nil))

	count := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/api/products/{id}", "404"))
	assert.Equal(t, 2.0, count)
	require.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InflightRequests))
}

func TestCors(t *testing.T) {
	h := middleware.Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp := serve(h, req)
	assert.Equal(t, "http://localhost:3000", resp.Header().Get("Access-Control-Allow-Origin"))
}
