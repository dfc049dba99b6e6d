package middleware

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/session"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey  = contextKey("userID")
	sessionKey = contextKey("session")
	storeKey   = contextKey("sessionStore")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetSessionFromContext returns the session restored by AuthMiddleware.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	sess, ok := c.Request.Context().Value(sessionKey).(domain.Session)
	return sess, ok
}

// GetSessionStoreFromContext returns the store of the calling client.
func GetSessionStoreFromContext(c *gin.Context) (*session.Store, bool) {
	store, ok := c.Request.Context().Value(storeKey).(*session.Store)
	return store, ok && store != nil
}

func withSession(ctx context.Context, store *session.Store, sess domain.Session) context.Context {
	ctx = context.WithValue(ctx, userIDKey, sess.User.UserID)
	ctx = context.WithValue(ctx, sessionKey, sess)
	return context.WithValue(ctx, storeKey, store)
}
