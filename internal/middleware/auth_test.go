// srikarboske | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s225280351srikarboske/project/internal/core"
)

type fakeVerifier struct {
	identity *Identity
	err      error
}

func (f *fakeVerifier) VerifySessionToken(
	ctx context.Context,
	token string,
) (*Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorAttachesIdentity(t *testing.T) {
	verifier := &fakeVerifier{
		identity: &Identity{
			UserID: "user-1",
			Role:   RoleAdmin,
			Email:  "admin@example.com",
		},
	}

	var got *Identity
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	Authenticator(verifier)(inner).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, RoleAdmin, got.Role)
	assert.Equal(t, "admin@example.com", got.Email)
}

func TestAuthenticatorMissingToken(t *testing.T) {
	verifier := &fakeVerifier{identity: &Identity{UserID: "u", Role: RoleAdmin}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Authenticator(verifier)(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorExpiredToken(t *testing.T) {
	verifier := &fakeVerifier{err: core.ErrTokenExpired}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	Authenticator(verifier)(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name     string
		identity *Identity
		allowed  []string
		want     int
	}{
		{
			name:     "admin allowed",
			identity: &Identity{UserID: "u", Role: RoleAdmin},
			allowed:  []string{RoleAdmin},
			want:     http.StatusOK,
		},
		{
			name:     "tenant forbidden on admin route",
			identity: &Identity{UserID: "u", Role: RoleTenant},
			allowed:  []string{RoleAdmin},
			want:     http.StatusForbidden,
		},
		{
			name:     "tenant allowed on tenant route",
			identity: &Identity{UserID: "u", Role: RoleTenant},
			allowed:  []string{RoleTenant},
			want:     http.StatusOK,
		},
		{
			name:     "unauthenticated",
			identity: nil,
			allowed:  []string{RoleAdmin},
			want:     http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.identity != nil {
				req = req.WithContext(
					withIdentity(req.Context(), tc.identity),
				)
			}
			rec := httptest.NewRecorder()

			RequireRole(tc.allowed...)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestOptionalAuthPassesThroughWithoutToken(t *testing.T) {
	verifier := &fakeVerifier{err: core.ErrTokenInvalid}

	var authenticated bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authenticated = IsAuthenticated(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	OptionalAuth(verifier)(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, authenticated)
}

func TestExtractToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractToken(req))

	req.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", ExtractToken(req))

	req.Header.Set("Authorization", "Basic abc123")
	assert.Empty(t, ExtractToken(req))
}
