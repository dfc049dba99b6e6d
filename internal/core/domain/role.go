package domain

// RoleType names a role in the fixed role catalog.
type RoleType string

const (
	RoleAdmin      RoleType = "admin"
	RoleManager    RoleType = "manager"
	RoleAccountant RoleType = "accountant"
	RoleHR         RoleType = "hr"
	RoleViewer     RoleType = "viewer"
)

// DefaultRole is assumed for users without a role assignment.
const DefaultRole = RoleViewer

// Permission is a single capability string such as "accounts:write".
type Permission string

// Role is a catalog entry: a role type plus the permissions it grants.
type Role struct {
	ID          string       `json:"id" yaml:"id"`
	Type        RoleType     `json:"type" yaml:"type"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Permissions []Permission `json:"permissions" yaml:"permissions"`
}

// Has reports whether the role grants perm. A "*" permission grants everything.
func (r Role) Has(perm Permission) bool {
	for _, p := range r.Permissions {
		if p == perm || p == "*" {
			return true
		}
	}
	return false
}
