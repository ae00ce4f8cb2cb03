package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-cost-api/pkg/log"
	"golang.org/x/time/rate"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func withClaims(r *http.Request, role string) *http.Request {
	claims := &domain.Claims{Role: role}
	claims.Subject = "user-1"
	return r.WithContext(context.WithValue(r.Context(), ContextKeyUser, claims))
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/connections", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("unknown origin gets no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/connections", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short circuits", func(t *testing.T) {
		called := false
		h := Cors([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

		req := httptest.NewRequest(http.MethodOptions, "/connections", nil)
		req.Header.Set("Origin", "http://anything.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, called)
		assert.Equal(t, "http://anything.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestAdminOnly(t *testing.T) {
	handler := AdminOnly()(okHandler)

	tests := []struct {
		name       string
		req        *http.Request
		wantStatus int
	}{
		{name: "admin", req: withClaims(httptest.NewRequest(http.MethodPost, "/cron/run", nil), domain.RoleAdmin), wantStatus: http.StatusOK},
		{name: "regular user", req: withClaims(httptest.NewRequest(http.MethodPost, "/cron/run", nil), domain.RoleAuthenticated), wantStatus: http.StatusForbidden},
		{name: "no claims", req: httptest.NewRequest(http.MethodPost, "/cron/run", nil), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tt.req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	t.Run("valid id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set(requestIDHeader, "1b4e28ba-2fa1-11d2-883f-0016d3cca427")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "1b4e28ba-2fa1-11d2-883f-0016d3cca427", seen)
		assert.Equal(t, seen, rec.Header().Get(requestIDHeader))
	})

	t.Run("invalid id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set(requestIDHeader, "not-a-uuid")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEqual(t, "not-a-uuid", seen)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(requestIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	before := testutil.ToFloat64(panicRecoveries)
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/costs/aws", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
	assert.Equal(t, before+1, testutil.ToFloat64(panicRecoveries))
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(rate.NewLimiter(rate.Limit(0.001), 1))(okHandler)
	before := testutil.ToFloat64(rateLimitRejects)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/recommendations/aws/analyze", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/recommendations/aws/analyze", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), apiErrors.ErrRateLimitExceeded)
	assert.Equal(t, before+1, testutil.ToFloat64(rateLimitRejects))
}

func TestMetricsMiddleware_RouteLabel(t *testing.T) {
	matched := MetricsMiddleware()(RoutePattern("/costs/:provider")(okHandler))
	unmatched := MetricsMiddleware()(http.NotFoundHandler())

	matchedBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/costs/:provider", "200"))
	unmatchedBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404"))

	matched.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/costs/aws", nil))
	unmatched.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, matchedBefore+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/costs/:provider", "200")))
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
	assert.Zero(t, testutil.ToFloat64(httpRequestsInFlight))
}
