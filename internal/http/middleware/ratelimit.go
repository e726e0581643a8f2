package middleware

import (
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/tuanvumaihuynh/food-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/food-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/food-catalog/internal/http/metric"
)

// RateLimit rejects requests above limit (with burst) with a 429. A zero
// limit disables the middleware.
func RateLimit(limit rate.Limit, burst int, m *metric.Metrics) func(http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(limit, burst)
	res := apierr.New(apperr.RateLimitedErr)
	errorMsg, err := json.Marshal(res)
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				m.RateLimited.Inc()

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(res.StatusCode)
				//nolint:errcheck
				w.Write(errorMsg)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
