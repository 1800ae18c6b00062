package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the shared admin secret on admin requests.
const AdminTokenHeader = "X-Admin-Token"

// RequireAdmin returns a middleware that rejects any request whose
// X-Admin-Token header does not equal the configured secret. It aborts
// before the handler runs, so a denied request has zero side effects.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AdminTokenHeader)
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
