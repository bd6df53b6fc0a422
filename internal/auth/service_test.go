// srikarboske | 2026
// service_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s225280351srikarboske/project/internal/core"
	"github.com/s225280351srikarboske/project/internal/middleware"
)

type fakeUsers struct {
	byEmail map[string]*UserInfo
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*UserInfo{}}
}

func (f *fakeUsers) GetByEmail(
	ctx context.Context,
	email string,
) (*UserInfo, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) Create(
	ctx context.Context,
	name, email, passwordHash, role string,
) (*UserInfo, error) {
	if _, ok := f.byEmail[email]; ok {
		return nil, core.ErrDuplicateKey
	}
	u := &UserInfo{
		ID:           "user-" + name,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	for _, u := range f.byEmail {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return core.ErrNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	jwt := newTestManager(t, 2*time.Hour)
	svc := NewService(jwt, newFakeUsers())
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "correct horse battery",
		Role:     middleware.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, middleware.RoleAdmin, registered.Role)
	assert.NotEqual(t, "correct horse battery", registered.PasswordHash)

	token, user, err := svc.Login(ctx, LoginRequest{
		Email:    "priya@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// The issued token must decode back to the registered role.
	identity, err := jwt.VerifySessionToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, middleware.RoleAdmin, identity.Role)
	assert.Equal(t, "priya@example.com", identity.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newTestManager(t, 2*time.Hour), newFakeUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "pw-one-two-three",
		Role:     middleware.RoleTenant,
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		Name:     "Impostor",
		Email:    "priya@example.com",
		Password: "different password",
		Role:     middleware.RoleTenant,
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newTestManager(t, 2*time.Hour), newFakeUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "pw-one-two-three",
		Role:     middleware.RoleTenant,
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, LoginRequest{
		Email:    "priya@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newTestManager(t, 2*time.Hour), newFakeUsers())

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
