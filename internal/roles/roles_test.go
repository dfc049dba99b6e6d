package roles_test

import (
	"testing"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	d := roles.Default()

	admin, ok := d.Lookup(domain.RoleAdmin)
	require.True(t, ok)
	assert.True(t, admin.Has("users:write"))

	hr, ok := d.ByID("4")
	require.True(t, ok)
	assert.Equal(t, domain.RoleHR, hr.Type)
	assert.False(t, hr.Has("accounts:write"))

	assert.Len(t, d.All(), 5)
	assert.Equal(t, "1", d.All()[0].ID)
}

func TestResolveFallsBackToViewer(t *testing.T) {
	d := roles.Default()
	assert.Equal(t, domain.RoleViewer, d.Resolve("").Type)
	assert.Equal(t, domain.RoleViewer, d.Resolve("superuser").Type)
	assert.Equal(t, domain.RoleAccountant, d.Resolve(domain.RoleAccountant).Type)
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	_, err := roles.Parse([]byte("roles:\n  - id: \"1\"\n    type: admin\n"))
	assert.ErrorContains(t, err, "viewer")

	_, err = roles.Parse([]byte("roles:\n  - id: \"1\"\n    type: viewer\n  - id: \"1\"\n    type: admin\n"))
	assert.ErrorContains(t, err, "duplicate role id")

	_, err = roles.Parse([]byte("roles: [oops"))
	assert.Error(t, err)
}
