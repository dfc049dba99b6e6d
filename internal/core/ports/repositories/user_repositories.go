package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
)

// UserReader defines read operations over the profiles and user_roles tables.
type UserReader interface {
	// FindProfiles retrieves up to limit profiles ordered by name. Role is left empty.
	FindProfiles(ctx context.Context, limit int) ([]domain.User, error)

	// FindRoleAssignments returns the role of each listed user that has one.
	FindRoleAssignments(ctx context.Context, userIDs []string) (map[string]domain.RoleType, error)

	// FindUserByID retrieves a profile joined with its role assignment.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a profile by case-insensitive email, joined with its role.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser inserts a profile and its role assignment atomically.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser applies the non-nil fields of patch to a profile.
	UpdateUser(ctx context.Context, userID string, patch domain.UserPatch, now time.Time) error

	// RecordLogin stamps the last login time.
	RecordLogin(ctx context.Context, userID string, at time.Time) error

	// UpsertUserRole assigns role to the user, inserting or updating in one statement.
	UpsertUserRole(ctx context.Context, userID string, role domain.RoleType, now time.Time) error

	// DeleteUser removes a profile and its role assignment.
	DeleteUser(ctx context.Context, userID string) error

	// DeleteUsers removes all listed profiles.
	DeleteUsers(ctx context.Context, userIDs []string) (int64, error)

	// UpdateUsersStatus sets the status of all listed profiles.
	UpdateUsersStatus(ctx context.Context, userIDs []string, status domain.UserStatus, now time.Time) (int64, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
