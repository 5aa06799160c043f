package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vickhardth/site-pulse-api/internal/constants"
	apierrors "github.com/vickhardth/site-pulse-api/internal/errors"
	"github.com/vickhardth/site-pulse-api/internal/utils"
)

// RequireAuth validates the Authorization bearer token and stores the caller's
// identity in the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apierrors.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.ID)
		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Set(constants.ContextKeyUserRole, claims.Role)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetUserRole retrieves the current user's role label from context. An absent role
// is returned as the empty string, which classifies as non-supervisory.
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return ""
	}
	if s, ok := role.(string); ok {
		return s
	}
	return ""
}

// GetUsername retrieves the current username from context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get(constants.ContextKeyUsername)
	if !exists {
		return ""
	}
	if s, ok := username.(string); ok {
		return s
	}
	return ""
}
