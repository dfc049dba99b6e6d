package services

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// ListUsers returns profiles joined with their role, defaulting to viewer.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) error
	UpdateUserRole(ctx context.Context, userID string, role domain.RoleType) error
	DeleteUser(ctx context.Context, userID string) error
	BulkDeleteUsers(ctx context.Context, userIDs []string) (int64, error)
	BulkUpdateUserStatus(ctx context.Context, userIDs []string, status domain.UserStatus) (int64, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
