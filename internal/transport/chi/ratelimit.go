package chi

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit returns a middleware enforcing a global request budget. Search
// is read-only and cheap, so a single shared limiter is enough; callers
// over budget get a JSON 429.
func RateLimit(rps float64, burst int) func(next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
