package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/SscSPs/bizdesk/internal/notify"
	"github.com/SscSPs/bizdesk/internal/querycache"
)

const (
	defaultCacheSize = 64
	defaultCacheTTL  = 5 * time.Minute
)

// BaseService provides common functionality for all services
type BaseService struct {
	notifier  notify.Notifier
	now       func() time.Time
	cacheSize int
	cacheTTL  time.Duration
}

// ServiceOption is a functional option shared by every service constructor.
type ServiceOption func(*BaseService)

// WithNotifier sets where mutation notifications go.
func WithNotifier(n notify.Notifier) ServiceOption {
	return func(s *BaseService) {
		s.notifier = n
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

// WithCacheConfig sizes the read-query caches.
func WithCacheConfig(size int, ttl time.Duration) ServiceOption {
	return func(s *BaseService) {
		s.cacheSize = size
		s.cacheTTL = ttl
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	b := BaseService{
		notifier:  notify.ContextNotifier{},
		now:       time.Now,
		cacheSize: defaultCacheSize,
		cacheTTL:  defaultCacheTTL,
	}
	for _, option := range options {
		option(&b)
	}
	return b
}

func newCache[T any](b BaseService) *querycache.Cache[T] {
	return querycache.New[T](b.cacheSize, b.cacheTTL)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// mutation describes one user-triggered write.
type mutation struct {
	// failure is the notification title used when the write fails.
	failure string
	// invalidate lists the query cache keys a successful write makes stale.
	invalidate []func()
}

// runMutation executes fn, a single backend call returning the success title.
// On success the listed caches are invalidated before the success notification goes out;
// on failure nothing is invalidated and the error notification carries the error message.
func (s *BaseService) runMutation(ctx context.Context, m mutation, fn func(ctx context.Context) (string, error)) error {
	title, err := fn(ctx)
	if err != nil {
		s.LogError(ctx, err, m.failure)
		s.notifier.Notify(ctx, notify.Failed(m.failure, apperrors.Message(err)))
		return err
	}
	for _, inv := range m.invalidate {
		inv()
	}
	s.LogInfo(ctx, title)
	s.notifier.Notify(ctx, notify.Succeeded(title))
	return nil
}
