// srikarboske | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s225280351srikarboske/project/internal/config"
	"github.com/s225280351srikarboske/project/internal/core"
	"github.com/s225280351srikarboske/project/internal/middleware"
)

func newTestManager(t *testing.T, expire time.Duration) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	m, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     privatePath,
		PublicKeyPath:      publicPath,
		SessionTokenExpire: expire,
		Issuer:             "property-manager",
		Audience:           "property-manager-api",
	})
	require.NoError(t, err)
	return m
}

func TestSessionTokenRoundTrip(t *testing.T) {
	m := newTestManager(t, 2*time.Hour)

	token, err := m.CreateSessionToken(
		"user-1", middleware.RoleAdmin, "admin@example.com",
	)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := m.VerifySessionToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, middleware.RoleAdmin, identity.Role)
	assert.Equal(t, "admin@example.com", identity.Email)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := newTestManager(t, -time.Minute)

	token, err := m.CreateSessionToken(
		"user-1", middleware.RoleTenant, "tenant@example.com",
	)
	require.NoError(t, err)

	_, err = m.VerifySessionToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenExpired))
}

func TestTamperedTokenRejected(t *testing.T) {
	m := newTestManager(t, 2*time.Hour)

	token, err := m.CreateSessionToken(
		"user-1", middleware.RoleAdmin, "admin@example.com",
	)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = m.VerifySessionToken(context.Background(), tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestForeignKeyTokenRejected(t *testing.T) {
	issuer := newTestManager(t, 2*time.Hour)
	verifier := newTestManager(t, 2*time.Hour)

	token, err := issuer.CreateSessionToken(
		"user-1", middleware.RoleAdmin, "admin@example.com",
	)
	require.NoError(t, err)

	_, err = verifier.VerifySessionToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestUnknownRoleClaimRejected(t *testing.T) {
	m := newTestManager(t, 2*time.Hour)

	token, err := m.CreateSessionToken("user-1", "Root", "root@example.com")
	require.NoError(t, err)

	_, err = m.VerifySessionToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}
