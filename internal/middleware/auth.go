package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/coordinator"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"go.uber.org/zap"
)

const (
	coordinatorKey = "coordinator"
	tokenKey       = "session_token"
)

// SessionSource resolves a session token to its coordinator
type SessionSource interface {
	Acquire(ctx context.Context, token string) (*coordinator.Coordinator, error)
}

// SessionAuth requires a valid Bearer session token and stores the
// session's coordinator in the context
func SessionAuth(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		coord, err := sessions.Acquire(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, models.ErrUnauthenticated) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			} else {
				observability.Logger().Error("failed to resolve session", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session store unavailable"})
			}
			c.Abort()
			return
		}

		if session, ok := coord.Session(); ok {
			c.Set("user_email", session.Email)
		}
		c.Set(coordinatorKey, coord)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// Coordinator returns the session coordinator stored by SessionAuth
func Coordinator(c *gin.Context) (*coordinator.Coordinator, bool) {
	value, exists := c.Get(coordinatorKey)
	if !exists {
		return nil, false
	}
	coord, ok := value.(*coordinator.Coordinator)
	return coord, ok
}

// SessionToken returns the token accepted by SessionAuth
func SessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
