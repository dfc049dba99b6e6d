package middleware

import (
	"github.com/SscSPs/bizdesk/internal/notify"
	"github.com/gin-gonic/gin"
)

// NotificationRecorder attaches a fresh notify.Recorder to every request so that
// handlers can return the notifications their mutations produced.
func NotificationRecorder() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec := &notify.Recorder{}
		c.Request = c.Request.WithContext(notify.WithRecorder(c.Request.Context(), rec))
		c.Next()
	}
}

// GetNotifications returns what has been recorded for the current request.
func GetNotifications(c *gin.Context) []notify.Notification {
	rec, ok := notify.RecorderFrom(c.Request.Context())
	if !ok {
		return []notify.Notification{}
	}
	return rec.All()
}
