package domain

import "time"

// UserStatus is the state of a user profile.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive, UserSuspended:
		return true
	}
	return false
}

// User is a profile joined with its single resolved role assignment.
type User struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         RoleType   `json:"role"`
	Status       UserStatus `json:"status"`
	AvatarURL    string     `json:"avatarURL,omitempty"`
	PasswordHash string     `json:"-"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UserPatch carries the profile fields of a partial user update.
// Role changes go through the role assignment upsert instead.
type UserPatch struct {
	Name      *string
	Email     *string
	Status    *UserStatus
	AvatarURL *string
}

func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Status == nil && p.AvatarURL == nil
}
