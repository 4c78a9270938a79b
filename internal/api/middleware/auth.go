// backend-go/internal/api/middleware/auth.go
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const realm = `Basic realm="Inventory Dashboard"`

// BasicAuth guards the API with the configured admin credentials. A
// deployment without credentials answers 500 on every request rather
// than running open.
func BasicAuth(configuredUser, configuredPass string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if configuredUser == "" || configuredPass == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Missing ADMIN_USER/ADMIN_PASS environment configuration.",
			})
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", realm)
			c.String(http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(configuredUser)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(configuredPass)) == 1
		if !userOK || !passOK {
			c.Header("WWW-Authenticate", realm)
			c.String(http.StatusUnauthorized, "Invalid credentials")
			c.Abort()
			return
		}

		c.Next()
	}
}
