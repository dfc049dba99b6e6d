package admincmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/platform/config"
	"github.com/SscSPs/bizdesk/internal/utils"
	"github.com/SscSPs/bizdesk/pkg/database"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func stubConfig(t *testing.T) {
	t.Helper()
	orig := loadConfig
	loadConfig = func() (*config.Config, error) {
		return &config.Config{DatabaseURL: "postgres://test", MigrationsPath: "file://migrations"}, nil
	}
	t.Cleanup(func() { loadConfig = orig })
}

func TestRolesList(t *testing.T) {
	out, err := run(t, "", "roles", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "admin")
	assert.Contains(t, out, "accounts:read")

	out, err = run(t, "", "roles", "list", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "roles:")
	assert.Contains(t, out, "type: viewer")

	_, err = run(t, "", "roles", "list", "--format", "xml")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "correct horse\n", "hash-password")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("correct horse", strings.TrimSpace(out)))

	_, err = run(t, "short", "hash-password")
	assert.ErrorContains(t, err, "at least")
}

func TestMigrate(t *testing.T) {
	stubConfig(t)
	var gotPath string
	var gotDir database.MigrateDirection
	orig := runMigrations
	runMigrations = func(url, path string, dir database.MigrateDirection, _ *slog.Logger) error {
		gotPath, gotDir = path, dir
		return nil
	}
	t.Cleanup(func() { runMigrations = orig })

	out, err := run(t, "", "migrate", "down")
	require.NoError(t, err)
	assert.Equal(t, database.MigrateDown, gotDir)
	assert.Equal(t, "file://migrations", gotPath)
	assert.Contains(t, out, "migrations down: done")

	_, err = run(t, "", "migrate", "sideways")
	assert.Error(t, err)
}

type fakeUsers struct {
	portssvc.UserSvcFacade
	got dto.CreateUserRequest
	err error
}

func (f *fakeUsers) CreateUser(_ context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{UserID: "u-1", Email: req.Email, Role: req.Role}, nil
}

func TestUserCreate(t *testing.T) {
	users := &fakeUsers{}
	orig := openUserService
	openUserService = func(*cobra.Command) (portssvc.UserSvcFacade, func(), error) {
		return users, func() {}, nil
	}
	t.Cleanup(func() { openUserService = orig })

	out, err := run(t, "correct horse\n", "user", "create", "--email", "admin@bizdesk.test", "--name", "Admin")
	require.NoError(t, err)
	assert.Equal(t, "correct horse", users.got.Password)
	assert.Equal(t, domain.RoleAdmin, users.got.Role)
	assert.Contains(t, out, "created user u-1")

	users.err = errors.New("email already registered")
	_, err = run(t, "correct horse\n", "user", "create", "--email", "admin@bizdesk.test", "--name", "Admin")
	assert.ErrorContains(t, err, "email already registered")
}
