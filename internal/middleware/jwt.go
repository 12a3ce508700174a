package middleware

import (
	"net/http"
	"strings"

	"github.com/IbuoCloud/backensena/internal/service"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer token and re-resolves the subject against the
// user store, so a token for a deleted user is rejected even before expiry.
func Auth(tokens *service.TokenService, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := tokens.Verify(header[7:])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		u, err := auth.FindByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("user_id", u.ID)
		c.Set("username", u.Username)
		c.Set("role", u.Role)
		c.Next()
	}
}

// AdminOnly must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}
