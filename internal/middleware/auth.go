// Package middleware provides HTTP middleware for the vacancy service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobvault/vacancy-service/internal/service"
)

// principalKey is the gin context key carrying the authenticated username.
const principalKey = "principal"

// Auth returns middleware gating requests on a bearer token. The token must
// parse, carry a valid signature, be unexpired, and, when the session cache
// is reachable, match the single stored token for its user. Any failure is a
// 401 with the error kind's stable message.
func Auth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Split(header, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing bearer token",
			})
			return
		}

		principal, err := authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// Principal returns the authenticated username set by Auth, or "" when the
// request did not pass through it.
func Principal(c *gin.Context) string {
	return c.GetString(principalKey)
}
