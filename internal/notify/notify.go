// Package notify delivers the transient success and error messages that
// mutations report to the user.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Kind is the severity of a notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Notification is a user facing message with a title and optional detail.
type Notification struct {
	Kind   Kind      `json:"kind"`
	Title  string    `json:"title"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

// Notifier receives notifications as mutations settle.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Succeeded builds a success notification.
func Succeeded(title string) Notification {
	return Notification{Kind: Success, Title: title, At: time.Now()}
}

// Failed builds an error notification carrying the failure message as detail.
func Failed(title, detail string) Notification {
	return Notification{Kind: Error, Title: title, Detail: detail, At: time.Now()}
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(ctx context.Context, n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	if n.Kind == Error {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "Notification", slog.String("kind", string(n.Kind)), slog.String("title", n.Title), slog.String("detail", n.Detail))
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
}

// All returns a copy of the recorded notifications in arrival order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, nt := range m {
		if nt != nil {
			nt.Notify(ctx, n)
		}
	}
}

type ctxKey struct{}

// WithRecorder attaches a request scoped recorder to ctx.
func WithRecorder(ctx context.Context, r *Recorder) context.Context {
	return context.WithValue(ctx, ctxKey{}, r)
}

// RecorderFrom returns the recorder attached to ctx, if any.
func RecorderFrom(ctx context.Context) (*Recorder, bool) {
	r, ok := ctx.Value(ctxKey{}).(*Recorder)
	return r, ok
}

// ContextNotifier forwards to the recorder attached to the context, and to Fallback.
// Services use it so that each request sees only its own notifications.
type ContextNotifier struct {
	Fallback Notifier
}

func (c ContextNotifier) Notify(ctx context.Context, n Notification) {
	if r, ok := RecorderFrom(ctx); ok {
		r.Notify(ctx, n)
	}
	if c.Fallback != nil {
		c.Fallback.Notify(ctx, n)
	}
}
