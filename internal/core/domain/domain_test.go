package domain_test

import (
	"testing"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, domain.Asset.Valid())
	assert.False(t, domain.AccountType("ASSET").Valid())
	assert.True(t, domain.AccountArchived.Valid())
	assert.True(t, domain.UserSuspended.Valid())
	assert.False(t, domain.VendorStatus("deleted").Valid())
	assert.True(t, domain.Internship.Valid())
	assert.True(t, domain.EmploymentOnLeave.Valid())
	assert.False(t, domain.Currency("BTC").Valid())
	assert.True(t, domain.Biweekly.Valid())
}

func TestRoleHas(t *testing.T) {
	admin := domain.Role{Type: domain.RoleAdmin, Permissions: []domain.Permission{"*"}}
	viewer := domain.Role{Type: domain.RoleViewer, Permissions: []domain.Permission{"accounts:read"}}

	assert.True(t, admin.Has("users:write"))
	assert.True(t, viewer.Has("accounts:read"))
	assert.False(t, viewer.Has("accounts:write"))
}

func TestPatchIsEmpty(t *testing.T) {
	name := "Cash"
	assert.True(t, domain.AccountPatch{}.IsEmpty())
	assert.False(t, domain.AccountPatch{Name: &name}.IsEmpty())
	assert.True(t, domain.EmployeePatch{}.IsEmpty())
	assert.True(t, domain.UserPatch{}.IsEmpty())
}

func TestEmployeeFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", domain.Employee{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", domain.Employee{FirstName: "Ada"}.FullName())
}
