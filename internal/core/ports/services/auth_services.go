package services

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/session"
)

// AuthSvcFacade drives the session state machine of a single client.
// Every operation takes the client's session store explicitly.
type AuthSvcFacade interface {
	// Login authenticates against the user directory and saves the session.
	Login(ctx context.Context, store *session.Store, email, password string) error

	// Signup registers a new user and saves the session.
	Signup(ctx context.Context, store *session.Store, email, password, name, roleID string) error

	// Logout clears the session and its persisted record.
	Logout(ctx context.Context, store *session.Store) error

	// ResetPassword never reports whether the email is registered.
	ResetPassword(ctx context.Context, email string) error

	// Restore rehydrates the store from its persisted record.
	Restore(ctx context.Context, store *session.Store) (bool, error)
}
