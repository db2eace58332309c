package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimitKeyFunc picks the bucket a request is counted in.
type RateLimitKeyFunc func(r *http.Request) string

// PerUserKey buckets requests by the authenticated user, falling back to
// one shared bucket for anonymous requests.
func PerUserKey(prefix string) RateLimitKeyFunc {
	return func(r *http.Request) string {
		if userID, ok := auth.UserIDFromContext(r.Context()); ok {
			return prefix + ":" + userID.String()
		}
		return prefix + ":anonymous"
	}
}

// RateLimit allows allowedPerMin requests per minute for each key, zero or
// less disables the limit.
func RateLimit(
	rateLimiter RequestRateLimiter,
	keyFunc RateLimitKeyFunc,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if allowedPerMin <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			res, err := rateLimiter.Allow(
				r.Context(),
				keyFunc(r),
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limit check for [%s]: %s", r.URL.Path, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			metricsManager.CounterRateLimitedRequests.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			http.Error(
				w,
				fmt.Sprintf("retry after %f seconds", res.RetryAfter.Seconds()),
				http.StatusTooManyRequests,
			)
		})
	}
}
