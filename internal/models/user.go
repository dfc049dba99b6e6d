package models

import (
	"time"
)

// Profile is a row of the profiles table.
type Profile struct {
	UserID       string     `db:"user_id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Status       string     `db:"status"`
	AvatarURL    *string    `db:"avatar_url"`
	PasswordHash string     `db:"password_hash"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// ProfileWithRole is a profile left-joined with its user_roles row.
// Role is empty when no assignment exists.
type ProfileWithRole struct {
	Profile
	Role string `db:"role"`
}

// UserRole is a row of the user_roles table.
type UserRole struct {
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
