// Package session holds the authenticated identity of a client and persists it
// so that a restarted client can pick it up again.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/bizdesk/internal/core/domain"
)

// StorageKey is the key a single-client store persists its record under.
const StorageKey = "auth_user"

// KeyFor namespaces the storage key for one of many clients sharing a Storage.
func KeyFor(sessionID string) string {
	return StorageKey + ":" + sessionID
}

// RoleResolver turns a role type into a catalog role.
type RoleResolver interface {
	Resolve(t domain.RoleType) domain.Role
}

// Store is the session context object. Nothing but a Store mutates its session.
// The zero value is not usable; use NewStore.
type Store struct {
	storage Storage
	key     string
	roles   RoleResolver

	mu      sync.RWMutex
	current *domain.Session
}

// NewStore creates an unauthenticated store persisting under key.
func NewStore(storage Storage, key string, roles RoleResolver) *Store {
	return &Store{storage: storage, key: key, roles: roles}
}

// Key returns the storage key of this store.
func (s *Store) Key() string {
	return s.key
}

// Restore rehydrates the session from storage. A missing record leaves the store
// unauthenticated; an unreadable one is removed and treated the same way.
// The role is re-resolved from the catalog rather than trusted from storage.
func (s *Store) Restore(ctx context.Context) (bool, error) {
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return false, fmt.Errorf("failed to read session record: %w", err)
	}
	if !ok {
		s.set(nil)
		return false, nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil || user.UserID == "" {
		slog.Default().Warn("Discarding unreadable session record", slog.String("key", s.key))
		if derr := s.storage.Delete(ctx, s.key); derr != nil {
			return false, fmt.Errorf("failed to delete unreadable session record: %w", derr)
		}
		s.set(nil)
		return false, nil
	}

	s.set(&domain.Session{User: user, Role: s.roles.Resolve(user.Role)})
	return true, nil
}

// Save persists user and makes it the active session, replacing any previous one.
func (s *Store) Save(ctx context.Context, user domain.User, role domain.Role) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("failed to persist session record: %w", err)
	}
	s.set(&domain.Session{User: user, Role: role})
	return nil
}

// Clear drops the active session and its persisted record.
func (s *Store) Clear(ctx context.Context) error {
	s.set(nil)
	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to delete session record: %w", err)
	}
	return nil
}

// Current returns a copy of the active session.
func (s *Store) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Session{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

func (s *Store) set(sess *domain.Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}
