package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/services/auth"
)

// ClaimsKey is the gin context key holding validated token claims
const ClaimsKey = "auth.claims"

// RequireScope validates the bearer token and requires it to grant scope
func RequireScope(svc *auth.Service, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// Check Bearer prefix
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := svc.ValidateToken(parts[1], scope)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				unauthorized(c, http.StatusForbidden, "Access denied - insufficient permissions")
			} else {
				unauthorized(c, http.StatusUnauthorized, "Invalid or expired token")
			}
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func unauthorized(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, types.ErrorResponse{
		Status:  types.StatusError,
		Message: message,
		Error:   "UNAUTHORIZED",
	})
}
