package middleware

import (
	"net/http"
	"strings"

	"tamapet/config"
	"tamapet/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionRequired validates the bearer session token and sets the user id in
// the request context.
func SessionRequired(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		userID, err := auth.ParseSessionToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

// GetUserID returns the session's user id (must be used after SessionRequired).
func GetUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get("user_id")
	if v == nil {
		return uuid.Nil
	}
	return v.(uuid.UUID)
}
