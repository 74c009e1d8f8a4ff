package middleware

import (
	"net/http"

	"hosteldesk/internal/auth"
	"hosteldesk/internal/config"

	"github.com/gin-gonic/gin"
)

const maxTokenLen = 4096

// TokenAuthMiddleware reads the configured token header, verifies the token
// and attaches the decoded identity to the request context. Role checks are
// left to the services.
func TokenAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader(cfg.TokenHeader)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "token not found"})
			return
		}

		if len(tokenStr) > maxTokenLen {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, err := auth.ParseToken(tokenStr, []byte(cfg.JWTSecret))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("usertype", claims.UserType)
		c.Next()
	}
}
