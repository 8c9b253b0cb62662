package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cv-report-api/pkg/log"
)

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{"Origem liberada", []string{"http://localhost:3000"}, "http://localhost:3000", http.MethodGet, "http://localhost:3000", http.StatusOK},
		{"Origem bloqueada", []string{"http://localhost:3000"}, "http://evil.com", http.MethodGet, "", http.StatusOK},
		{"Curinga", []string{"*"}, "http://app.exemplo.com", http.MethodGet, "http://app.exemplo.com", http.StatusOK},
		{"Preflight", []string{"*"}, "http://app.exemplo.com", http.MethodOptions, "http://app.exemplo.com", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/v1/cv/routes", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.method != http.MethodOptions, called)
			if tt.wantOrigin != "" {
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), InspectorHeader)
			}
		})
	}
}

func TestInspector(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = InspectorFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/cv/review/update", nil)
	req.Header.Set(InspectorHeader, "  ana ")
	Inspector()(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "ana", got)

	req = httptest.NewRequest(http.MethodPost, "/v1/cv/review/update", nil)
	Inspector()(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, got)
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/v1/cron/:type/run", routeLabel("/v1/cron/cv-refresh/run"))
	assert.Equal(t, "/v1/cron/:type/run", routeLabel("/v1/cron/all/run"))
	assert.Equal(t, "/v1/cron/status", routeLabel("/v1/cron/status"))
	assert.Equal(t, "/v1/cv/analysis", routeLabel("/v1/cv/analysis"))
}

func TestMetricsKeepsStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	Metrics()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLoggingMiddlewareCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var fromContext string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Reaproveita o ID recebido", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("X-Correlation-ID", incoming)
		rec := httptest.NewRecorder()

		LoggingMiddleware()(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, incoming, rec.Header().Get("X-Correlation-ID"))
		assert.Equal(t, incoming, fromContext)
	})

	t.Run("Gera um novo ID quando o recebido é inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("X-Correlation-ID", "nao-e-uuid")
		rec := httptest.NewRecorder()

		LoggingMiddleware()(next).ServeHTTP(rec, req)

		generated := rec.Header().Get("X-Correlation-ID")
		_, err := uuid.Parse(generated)
		assert.NoError(t, err)
		assert.Equal(t, generated, fromContext)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cv/analysis", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)
}

func TestLoggingResponseWriterWritesHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rec)

	lrw.WriteHeader(http.StatusAccepted)
	lrw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, lrw.statusCode)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
