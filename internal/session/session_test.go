package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/roles"
	"github.com/SscSPs/bizdesk/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct {
	session.Storage
}

func (failingStorage) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func testUser() domain.User {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return domain.User{
		UserID:       "u-1",
		Name:         "Ada",
		Email:        "ada@example.com",
		Role:         domain.RoleAccountant,
		Status:       domain.UserActive,
		PasswordHash: "secret-hash",
		LastLoginAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestStoreSaveAndRestore(t *testing.T) {
	ctx := context.Background()
	storage := session.NewMemoryStorage()
	dir := roles.Default()

	store := session.NewStore(storage, session.StorageKey, dir)
	assert.False(t, store.IsAuthenticated())

	role, _ := dir.Lookup(domain.RoleAccountant)
	require.NoError(t, store.Save(ctx, testUser(), role))
	assert.True(t, store.IsAuthenticated())

	// simulated restart: new store over the same storage
	restarted := session.NewStore(storage, session.StorageKey, dir)
	ok, err := restarted.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	sess, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, "u-1", sess.User.UserID)
	assert.Equal(t, domain.RoleAccountant, sess.Role.Type)
	assert.True(t, sess.User.LastLoginAt.Equal(*testUser().LastLoginAt))
	assert.Empty(t, sess.User.PasswordHash, "password hash must not be persisted")
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	storage := session.NewMemoryStorage()
	dir := roles.Default()
	store := session.NewStore(storage, session.KeyFor("abc"), dir)

	require.NoError(t, store.Save(ctx, testUser(), dir.Resolve(domain.RoleAccountant)))
	require.NoError(t, store.Clear(ctx))
	assert.False(t, store.IsAuthenticated())

	_, found, err := storage.Get(ctx, "auth_user:abc")
	require.NoError(t, err)
	assert.False(t, found)

	ok, err := session.NewStore(storage, session.KeyFor("abc"), dir).Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRestoreDiscardsCorruptRecord(t *testing.T) {
	ctx := context.Background()
	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, session.StorageKey, []byte("{not json")))

	store := session.NewStore(storage, session.StorageKey, roles.Default())
	ok, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, store.IsAuthenticated())

	_, found, _ := storage.Get(ctx, session.StorageKey)
	assert.False(t, found)
}

func TestRestoreReResolvesUnknownRoleToViewer(t *testing.T) {
	ctx := context.Background()
	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, session.StorageKey, []byte(`{"userID":"u-9","role":"ghost","status":"active"}`)))

	store := session.NewStore(storage, session.StorageKey, roles.Default())
	ok, err := store.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	sess, _ := store.Current()
	assert.Equal(t, domain.RoleViewer, sess.Role.Type)
}

func TestSaveFailureLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(failingStorage{session.NewMemoryStorage()}, session.StorageKey, roles.Default())

	err := store.Save(ctx, testUser(), roles.Default().Resolve(domain.RoleViewer))
	assert.ErrorContains(t, err, "disk full")
	assert.False(t, store.IsAuthenticated())
}
