package dto

import (
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
)

// CreateUserRequest is used by administrators to add a user directly.
type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required,max=255"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.RoleType `json:"role" binding:"omitempty"`
}

// UpdateUserRequest defines the profile fields allowed for updating a user.
type UpdateUserRequest struct {
	Name      *string            `json:"name" binding:"omitempty,max=255"`
	Email     *string            `json:"email" binding:"omitempty,email"`
	Status    *domain.UserStatus `json:"status" binding:"omitempty,oneof=active inactive suspended"`
	AvatarURL *string            `json:"avatarURL" binding:"omitempty,url"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateUserRequest) ToPatch() domain.UserPatch {
	return domain.UserPatch{Name: r.Name, Email: r.Email, Status: r.Status, AvatarURL: r.AvatarURL}
}

// UpdateUserRoleRequest assigns a new role.
type UpdateUserRoleRequest struct {
	Role domain.RoleType `json:"role" binding:"required"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID      string            `json:"userID"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        domain.RoleType   `json:"role"`
	Status      domain.UserStatus `json:"status"`
	AvatarURL   string            `json:"avatarURL,omitempty"`
	LastLoginAt *time.Time        `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Status:      u.Status,
		AvatarURL:   u.AvatarURL,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
