package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/querycache"
	"github.com/SscSPs/bizdesk/internal/utils"
	"github.com/google/uuid"
)

// UserListLimit caps how many profiles the user listing reads.
const UserListLimit = 500

// RoleCatalog resolves roles from the fixed catalog.
type RoleCatalog interface {
	Lookup(t domain.RoleType) (domain.Role, bool)
	ByID(id string) (domain.Role, bool)
	Resolve(t domain.RoleType) domain.Role
}

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	roles    RoleCatalog
	cache    *querycache.Cache[[]domain.User]
}

// NewUserService creates the user administration service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, roles RoleCatalog, options ...ServiceOption) portssvc.UserSvcFacade {
	return newUserService(userRepo, roles, options...)
}

func newUserService(userRepo portsrepo.UserRepositoryFacade, roles RoleCatalog, options ...ServiceOption) *userService {
	base := newBaseService(options...)
	return &userService{
		BaseService: base,
		userRepo:    userRepo,
		roles:       roles,
		cache:       newCache[[]domain.User](base),
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) invalidate() {
	s.cache.Invalidate(domain.CollectionUsers)
}

// ListUsers reads profiles first and then their role assignments.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.cache.Fetch(ctx, domain.CollectionUsers, s.loadUsers)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) loadUsers(ctx context.Context) ([]domain.User, error) {
	profiles, err := s.userRepo.FindProfiles(ctx, UserListLimit)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return []domain.User{}, nil
	}

	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.UserID
	}
	assignments, err := s.userRepo.FindRoleAssignments(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range profiles {
		role, ok := assignments[profiles[i].UserID]
		if !ok || role == "" {
			role = domain.DefaultRole
		}
		profiles[i].Role = role
	}
	s.LogDebug(ctx, "Users loaded", slog.Int("count", len(profiles)), slog.Int("with_role", len(assignments)))
	return profiles, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	var created domain.User
	err := s.runMutation(ctx, mutation{failure: "Failed to create user", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		name, err := requireText("name", req.Name)
		if err != nil {
			return "", err
		}
		email, err := requireText("email", req.Email)
		if err != nil {
			return "", err
		}
		if err := utils.CheckPasswordPolicy(req.Password); err != nil {
			return "", validationErr("%s", err)
		}
		role := req.Role
		if role == "" {
			role = domain.DefaultRole
		}
		if _, ok := s.roles.Lookup(role); !ok {
			return "", apperrors.ErrInvalidRole
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return "", err
		}

		now := s.now()
		created = domain.User{
			UserID:       uuid.NewString(),
			Name:         name,
			Email:        strings.ToLower(email),
			Role:         role,
			Status:       domain.UserActive,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.userRepo.SaveUser(ctx, created); err != nil {
			return "", err
		}
		return "User created successfully", nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) error {
	return s.runMutation(ctx, mutation{failure: "Failed to update user", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		patch := req.ToPatch()
		if patch.IsEmpty() {
			return "", validationErr("no fields to update")
		}
		patch.Name = trimPtr(patch.Name)
		if patch.Name != nil && *patch.Name == "" {
			return "", validationErr("name cannot be blank")
		}
		if patch.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*patch.Email))
			if email == "" {
				return "", validationErr("email cannot be blank")
			}
			patch.Email = &email
		}
		if patch.Status != nil && !patch.Status.Valid() {
			return "", validationErr("unknown user status %q", *patch.Status)
		}
		patch.AvatarURL = trimPtr(patch.AvatarURL)
		if err := s.userRepo.UpdateUser(ctx, userID, patch, s.now()); err != nil {
			return "", err
		}
		return "User updated successfully", nil
	})
}

// UpdateUserRole assigns a catalog role. The repository performs it as a single upsert.
func (s *userService) UpdateUserRole(ctx context.Context, userID string, role domain.RoleType) error {
	return s.runMutation(ctx, mutation{failure: "Failed to update user role", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		if _, ok := s.roles.Lookup(role); !ok {
			return "", apperrors.ErrInvalidRole
		}
		if err := s.userRepo.UpsertUserRole(ctx, userID, role, s.now()); err != nil {
			return "", err
		}
		return "User role updated successfully", nil
	})
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.runMutation(ctx, mutation{failure: "Failed to delete user", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
			return "", err
		}
		return "User deleted successfully", nil
	})
}

func (s *userService) BulkDeleteUsers(ctx context.Context, userIDs []string) (int64, error) {
	var n int64
	err := s.runMutation(ctx, mutation{failure: "Failed to delete users", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		ids, err := uniqueIDs(userIDs)
		if err != nil {
			return "", err
		}
		n, err = s.userRepo.DeleteUsers(ctx, ids)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d user(s) deleted successfully", n), nil
	})
	return n, err
}

func (s *userService) BulkUpdateUserStatus(ctx context.Context, userIDs []string, status domain.UserStatus) (int64, error) {
	var n int64
	err := s.runMutation(ctx, mutation{failure: "Failed to update users", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		if !status.Valid() {
			return "", validationErr("unknown user status %q", status)
		}
		ids, err := uniqueIDs(userIDs)
		if err != nil {
			return "", err
		}
		n, err = s.userRepo.UpdateUsersStatus(ctx, ids, status, s.now())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d user(s) updated successfully", n), nil
	})
	return n, err
}
