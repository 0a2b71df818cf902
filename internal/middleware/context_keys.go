package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private key type to prevent collisions in contexts.
type contextKey string

const (
	// loggerCtxKey stores the request-scoped slog.Logger in the request context.
	loggerCtxKey = contextKey("logger")

	// userIDKey stores the authenticated user's ID in the request context.
	userIDKey = contextKey("userID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if val := c.Request.Context().Value(userIDKey); val != nil {
		if userID, ok := val.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// WithUserID returns a context carrying the given user ID. Batch entry points
// (CLI triggers, schedulers) use it so audit fields get a real actor.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
