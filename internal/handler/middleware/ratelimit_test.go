//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"table-booking/internal/handler/middleware"
	"table-booking/internal/infra/ratelimit"
	httptestutil "table-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Decision, error) {
	s.keys = append(s.keys, key)
	return s.decision, s.err
}

func rateLimitedRouter(limiter middleware.RateLimiter, userID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user_id", *userID)
			c.Next()
		})
	}
	r.Use(middleware.RateLimit(limiter))
	r.GET("/restaurants/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed request carries quota headers", func(t *testing.T) {
		limiter := &stubLimiter{decision: ratelimit.Decision{Allowed: true, Limit: 10, Remaining: 7}}
		w := httptestutil.PerformRequest(t, rateLimitedRouter(limiter, nil), http.MethodGet, "/restaurants/1", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		httptestutil.AssertHeaders(t, w, map[string]string{
			"X-RateLimit-Limit":     "10",
			"X-RateLimit-Remaining": "7",
		})
		assert.Equal(t, []string{"ip:192.0.2.1:GET /restaurants/:id"}, limiter.keys)
	})

	t.Run("authenticated requests are keyed by user", func(t *testing.T) {
		id := uuid.New()
		limiter := &stubLimiter{decision: ratelimit.Decision{Allowed: true, Limit: 10}}
		httptestutil.PerformRequest(t, rateLimitedRouter(limiter, &id), http.MethodGet, "/restaurants/1", nil, "")

		assert.Equal(t, []string{"user:" + id.String() + ":GET /restaurants/:id"}, limiter.keys)
	})

	t.Run("exhausted bucket returns 429", func(t *testing.T) {
		limiter := &stubLimiter{decision: ratelimit.Decision{Limit: 10, RetryAfter: 2500 * time.Millisecond}}
		w := httptestutil.PerformRequest(t, rateLimitedRouter(limiter, nil), http.MethodGet, "/restaurants/1", nil, "")

		httptestutil.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Rate limit exceeded")
		assert.Equal(t, "3", w.Header().Get("Retry-After"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		limiter := &stubLimiter{err: errors.New("redis down")}
		w := httptestutil.PerformRequest(t, rateLimitedRouter(limiter, nil), http.MethodGet, "/restaurants/1", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("nil limiter is a no-op", func(t *testing.T) {
		w := httptestutil.PerformRequest(t, rateLimitedRouter(nil, nil), http.MethodGet, "/restaurants/1", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
