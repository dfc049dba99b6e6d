package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/session"
	"github.com/SscSPs/bizdesk/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserLookup reads a user's current profile and role assignment.
type UserLookup interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// AuthMiddleware validates the bearer JWT and restores the client's session from storage.
// A token whose session was logged out is rejected even if it has not expired. The user is
// read again on every request: a deleted or deactivated user loses the session, and a
// changed role takes effect immediately.
func AuthMiddleware(jwtSecret string, storage session.Storage, roles session.RoleResolver, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		if claims.Subject == "" || claims.ID == "" {
			logger.Error("Subject or session id missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		store := session.NewStore(storage, session.KeyFor(claims.ID), roles)
		ok, err := store.Restore(c.Request.Context())
		if err != nil {
			logger.Error("Failed to restore session", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore session"})
			return
		}
		sess, _ := store.Current()
		if !ok || sess.User.UserID != claims.Subject {
			logger.Warn("Session not found for token", slog.String("user_id", claims.Subject))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has ended, please log in again"})
			return
		}

		user, err := users.FindUserByID(c.Request.Context(), sess.User.UserID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load session user", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore session"})
			return
		}
		if user == nil || user.Status != domain.UserActive {
			logger.Warn("Ending session of removed or inactive user", slog.String("user_id", sess.User.UserID))
			if err := store.Clear(c.Request.Context()); err != nil {
				logger.Error("Failed to clear session", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is no longer active, please log in again"})
			return
		}
		if user.Role != sess.User.Role {
			if err := store.Save(c.Request.Context(), *user, roles.Resolve(user.Role)); err != nil {
				logger.Error("Failed to persist refreshed session", slog.String("error", err.Error()))
			}
		}
		sess = domain.Session{User: *user, Role: roles.Resolve(user.Role)}

		enrichedLogger := logger.With(slog.String("user_id", sess.User.UserID), slog.String("role", string(sess.Role.Type)))
		ctx := withSession(c.Request.Context(), store, sess)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}

// RequirePermission rejects requests whose session role lacks perm.
// It must run after AuthMiddleware.
func RequirePermission(perm domain.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !sess.Role.Has(perm) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Permission denied", slog.String("permission", string(perm)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// ReadWrite picks the read or write permission of resource based on the HTTP method.
func ReadWrite(resource string) gin.HandlerFunc {
	read := RequirePermission(domain.Permission(resource + ":read"))
	write := RequirePermission(domain.Permission(resource + ":write"))
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			read(c)
			return
		}
		write(c)
	}
}
