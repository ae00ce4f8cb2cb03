package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once limiter runs out of tokens.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				rateLimitRejects.Inc()
				logrus.WithField("path", r.URL.Path).Warn("Rate limit exceeded")

				w.Header().Set("Retry-After", "1")
				apiErrors.WriteError(w, apiErrors.ErrRateLimitExceeded, "Too many requests, try again later", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
