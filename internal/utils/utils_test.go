package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bizdesk/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("correct horse", hash))
	assert.False(t, utils.CheckPasswordHash("wrong horse", hash))
	assert.False(t, utils.CheckPasswordHash("correct horse", ""))
}

func TestJWTCarriesSessionID(t *testing.T) {
	token, expiresAt, err := utils.GenerateJWT("u-1", "sid-1", "secret", time.Hour, "bizdesk-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "sid-1", claims.ID)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestPasswordPolicy(t *testing.T) {
	assert.NoError(t, utils.CheckPasswordPolicy("12345678"))
	assert.ErrorContains(t, utils.CheckPasswordPolicy("1234567"), "at least 8")
	assert.Error(t, utils.CheckPasswordPolicy(strings.Repeat("x", 73)))
}

func TestNewSessionID(t *testing.T) {
	a, err := utils.NewSessionID()
	require.NoError(t, err)
	b, err := utils.NewSessionID()
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
