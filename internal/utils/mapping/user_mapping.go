package mapping

import (
	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/models"
)

// ToModelProfile converts a domain User to its profiles row. The role lives in user_roles.
func ToModelProfile(d domain.User) models.Profile {
	return models.Profile{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		Status:       string(d.Status),
		AvatarURL:    nilIfEmpty(d.AvatarURL),
		PasswordHash: d.PasswordHash,
		LastLoginAt:  d.LastLoginAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainUser converts a profiles row to a domain User with no role set.
func ToDomainUser(m models.Profile) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		Status:       domain.UserStatus(m.Status),
		AvatarURL:    derefString(m.AvatarURL),
		PasswordHash: m.PasswordHash,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDomainUserWithRole converts a joined row; a missing assignment becomes the default role.
func ToDomainUserWithRole(m models.ProfileWithRole) domain.User {
	u := ToDomainUser(m.Profile)
	u.Role = domain.RoleType(m.Role)
	if u.Role == "" {
		u.Role = domain.DefaultRole
	}
	return u
}

// ToDomainUserSlice converts a slice of profiles rows to a slice of domain Users
func ToDomainUserSlice(ms []models.Profile) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

// nilIfEmpty maps an empty string to a NULL column value.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// derefString maps a NULL column value to an empty string.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
