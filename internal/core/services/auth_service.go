package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/session"
	"github.com/SscSPs/bizdesk/internal/utils"
	"github.com/google/uuid"
)

// UserDirectory is the part of the user repository authentication needs.
type UserDirectory interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	SaveUser(ctx context.Context, user domain.User) error
	RecordLogin(ctx context.Context, userID string, at time.Time) error
}

type authService struct {
	BaseService
	users UserDirectory
	roles RoleCatalog
	// onSignup runs after a new user is persisted.
	onSignup []func()
}

// NewAuthService creates the authentication service.
func NewAuthService(users UserDirectory, roles RoleCatalog, options ...ServiceOption) portssvc.AuthSvcFacade {
	return newAuthService(users, roles, options...)
}

func newAuthService(users UserDirectory, roles RoleCatalog, options ...ServiceOption) *authService {
	return &authService{
		BaseService: newBaseService(options...),
		users:       users,
		roles:       roles,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies the credentials and makes the user the store's session.
// The store is left untouched on every failure.
func (s *authService) Login(ctx context.Context, store *session.Store, email, password string) error {
	email = normalizeEmail(email)
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown email")
			return apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("user_id", user.UserID))
		return apperrors.ErrInvalidCredentials
	}
	if user.Status != domain.UserActive {
		s.LogInfo(ctx, "Login attempt for inactive account", slog.String("user_id", user.UserID), slog.String("status", string(user.Status)))
		return apperrors.ErrAccountInactive
	}

	now := s.now()
	if err := s.users.RecordLogin(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to record login", slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to record login: %w", err)
	}
	user.LastLoginAt = &now
	user.UpdatedAt = now

	role := s.roles.Resolve(user.Role)
	if err := store.Save(ctx, *user, role); err != nil {
		return err
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID), slog.String("role", string(role.Type)))
	return nil
}

// Signup registers a new active user and makes it the store's session.
func (s *authService) Signup(ctx context.Context, store *session.Store, email, password, name, roleID string) error {
	email = normalizeEmail(email)
	if email == "" {
		return validationErr("email is required")
	}

	existing, err := s.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return apperrors.ErrEmailAlreadyExists
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up user for signup")
		return fmt.Errorf("failed to look up user: %w", err)
	}

	role, ok := s.roles.ByID(strings.TrimSpace(roleID))
	if !ok {
		return apperrors.ErrInvalidRole
	}
	name, err = requireText("name", name)
	if err != nil {
		return err
	}
	if err := utils.CheckPasswordPolicy(password); err != nil {
		return validationErr("%s", err)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role.Type,
		Status:       domain.UserActive,
		PasswordHash: hash,
		LastLoginAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return apperrors.ErrEmailAlreadyExists
		}
		s.LogError(ctx, err, "Failed to save signed up user")
		return fmt.Errorf("failed to create user: %w", err)
	}
	for _, fn := range s.onSignup {
		fn()
	}

	if err := store.Save(ctx, user, role); err != nil {
		return err
	}
	s.LogInfo(ctx, "User signed up", slog.String("user_id", user.UserID), slog.String("role", string(role.Type)))
	return nil
}

func (s *authService) Logout(ctx context.Context, store *session.Store) error {
	if sess, ok := store.Current(); ok {
		s.LogInfo(ctx, "User logged out", slog.String("user_id", sess.User.UserID))
	}
	return store.Clear(ctx)
}

// ResetPassword is a stub: it reports success whether or not the email exists and changes nothing.
func (s *authService) ResetPassword(ctx context.Context, email string) error {
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	switch {
	case err == nil:
		s.LogDebug(ctx, "Password reset requested", slog.String("user_id", user.UserID))
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogDebug(ctx, "Password reset requested for unknown email")
	default:
		s.LogError(ctx, err, "Failed to look up user for password reset")
	}
	return nil
}

func (s *authService) Restore(ctx context.Context, store *session.Store) (bool, error) {
	return store.Restore(ctx)
}
