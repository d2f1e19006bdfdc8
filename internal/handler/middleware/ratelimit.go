package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"table-booking/internal/handler/httperr"
	"table-booking/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

// RateLimit throttles per user (or per client IP before authentication) and
// route. A nil limiter or a Redis failure lets the request through.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			key = "user:" + userID.String()
		}
		key += ":" + c.Request.Method + " " + c.FullPath()

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			c.Header("Retry-After", decision.RetryAfterSeconds())
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Rate limit exceeded", httperr.Detail{Code: httperr.CodeRateLimited})
			return
		}
		c.Next()
	}
}
