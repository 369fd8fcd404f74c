package middleware

import (
	"net/http"
	"strconv"
	"time"

	"movie-catalog/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit limits requests per client IP with a sliding window.
// A non-positive limit disables it.
func RateLimit(config utils.RateLimitConfig) func(http.Handler) http.Handler {
	if config.Requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	window := config.Window
	if window <= 0 {
		window = time.Minute
	}

	return httprate.Limit(
		config.Requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			utils.ResponseJSON(w, http.StatusTooManyRequests, false, "Too many requests. Please try again later.", nil, nil)
		}),
	)
}
