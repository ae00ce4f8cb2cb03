package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloudcost_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cloudcost_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cloudcost_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	rateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloudcost_rate_limit_rejects_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	panicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloudcost_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)

const (
	contextKeyRoute contextKey = "route"
	unmatchedRoute             = "unmatched"
)

// routeHolder is filled by RoutePattern once the router has matched the request.
type routeHolder struct {
	pattern string
}

// MetricsMiddleware records request count, latency and in-flight requests.
// Requests are labelled with the route pattern, not the raw path.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			httpRequestsInFlight.Inc()
			defer httpRequestsInFlight.Dec()

			holder := &routeHolder{pattern: unmatchedRoute}
			r = r.WithContext(context.WithValue(r.Context(), contextKeyRoute, holder))

			lrw := newLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)

			httpRequestsTotal.WithLabelValues(r.Method, holder.pattern, strconv.Itoa(lrw.statusCode)).Inc()
			httpRequestDuration.WithLabelValues(r.Method, holder.pattern).Observe(time.Since(start).Seconds())
		})
	}
}

// RoutePattern reports pattern as the matched route of the request.
func RoutePattern(pattern string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if holder, ok := r.Context().Value(contextKeyRoute).(*routeHolder); ok {
				holder.pattern = pattern
			}
			next.ServeHTTP(w, r)
		})
	}
}
