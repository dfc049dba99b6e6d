package dto

import (
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
)

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest carries the data needed to register.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=255"`
	RoleID   string `json:"roleID" binding:"required"`
}

// ResetPasswordRequest asks for a password reset.
type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthResponse is returned after a successful login or signup.
type AuthResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Session     SessionResponse `json:"session"`
}

// SessionResponse describes the authenticated identity.
type SessionResponse struct {
	User        UserResponse        `json:"user"`
	Role        domain.RoleType     `json:"role"`
	RoleName    string              `json:"roleName"`
	Permissions []domain.Permission `json:"permissions"`
}

// ToSessionResponse converts a domain.Session to its DTO.
func ToSessionResponse(s domain.Session) SessionResponse {
	return SessionResponse{
		User:        ToUserResponse(&s.User),
		Role:        s.Role.Type,
		RoleName:    s.Role.Name,
		Permissions: s.Role.Permissions,
	}
}
