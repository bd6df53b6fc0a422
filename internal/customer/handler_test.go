// srikarboske | 2026
// handler_test.go

package customer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s225280351srikarboske/project/internal/middleware"
)

func passthrough(next http.Handler) http.Handler {
	return next
}

// asEmail simulates an authenticated caller whose token carries the given
// email.
func asEmail(email string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				ctx := context.WithValue(
					r.Context(), middleware.UserEmailKey, email,
				)
				next.ServeHTTP(w, r.WithContext(ctx))
			})
	}
}

func newTestRouter(identity func(http.Handler) http.Handler) chi.Router {
	handler := NewHandler(NewService(newMemRepo()))

	r := chi.NewRouter()
	handler.RegisterRoutes(r, identity, passthrough, passthrough)
	return r
}

func TestDuplicateEmailReturns400(t *testing.T) {
	router := newTestRouter(passthrough)

	payload := `{"name":"Acme Holdings","email":"billing@acme.com"}`

	req := httptest.NewRequest(
		http.MethodPost, "/customers/", bytes.NewBufferString(payload),
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(
		http.MethodPost, "/customers/", bytes.NewBufferString(payload),
	)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Email already exists", resp.Message)
}

func TestListIncludeDeletedFlag(t *testing.T) {
	handler := NewHandler(NewService(newMemRepo()))
	r := chi.NewRouter()
	handler.RegisterRoutes(r, passthrough, passthrough, passthrough)

	create := `{"name":"Acme Holdings","email":"billing@acme.com"}`
	req := httptest.NewRequest(
		http.MethodPost, "/customers/", bytes.NewBufferString(create),
	)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req = httptest.NewRequest(
		http.MethodDelete, "/customers/"+created.ID, nil,
	)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/customers/", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var visible []CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visible))
	assert.Empty(t, visible)

	req = httptest.NewRequest(
		http.MethodGet, "/customers/?includeDeleted=true", nil,
	)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.True(t, all[0].IsDeleted)
}

func TestSelfServiceRoutes(t *testing.T) {
	repo := newMemRepo()
	handler := NewHandler(NewService(repo))

	r := chi.NewRouter()
	handler.RegisterRoutes(
		r, asEmail("billing@acme.com"), passthrough, passthrough,
	)

	create := `{"name":"Acme Holdings","email":"billing@acme.com"}`
	req := httptest.NewRequest(
		http.MethodPost, "/customers/", bytes.NewBufferString(create),
	)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/customers/me/record", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var mine CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	assert.Equal(t, "billing@acme.com", mine.Email)
	assert.False(t, mine.Paid)

	req = httptest.NewRequest(http.MethodPost, "/customers/me/mark-paid", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var paid CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &paid))
	assert.True(t, paid.Paid)
}
