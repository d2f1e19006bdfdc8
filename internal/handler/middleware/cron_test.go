//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"table-booking/internal/handler/middleware"
	httptestutil "table-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cronRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/cron/reminders", middleware.RequireCronSecret(secret), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})
	return r
}

func TestRequireCronSecret(t *testing.T) {
	cases := []struct {
		name   string
		secret string
		token  string
		want   int
	}{
		{name: "matching secret", secret: "s3cret", token: "s3cret", want: http.StatusAccepted},
		{name: "wrong secret", secret: "s3cret", token: "guess", want: http.StatusUnauthorized},
		{name: "missing header", secret: "s3cret", want: http.StatusUnauthorized},
		{name: "open when unset", secret: "", want: http.StatusAccepted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptestutil.PerformRequest(t, cronRouter(tc.secret), http.MethodPost, "/cron/reminders", nil, tc.token)
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusUnauthorized {
				httptestutil.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid cron secret")
			}
		})
	}
}
