package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"table-booking/internal/handler/httperr"
)

// RequireCronSecret guards scheduler endpoints with a shared bearer secret.
// An empty secret leaves the endpoint open, which is only meant for local use.
func RequireCronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if !strings.HasPrefix(header, "Bearer ") || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			httperr.Unauthorized(c, "Invalid cron secret")
			return
		}
		c.Next()
	}
}
