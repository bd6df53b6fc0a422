// srikarboske | 2026
// handler_test.go

package issue

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
)

func passthrough(next http.Handler) http.Handler {
	return next
}

func newTestRouter(repo Repository) chi.Router {
	svc := NewService(repo, &fakeProperties{})
	handler := NewHandler(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r, passthrough, passthrough, passthrough)
	return r
}

func TestCreateIssueEnvelope(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	body := bytes.NewBufferString(
		`{"category":"ELECTRIC","description":"socket sparking"}`,
	)
	req := httptest.NewRequest(http.MethodPost, "/issues/", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		OK   bool          `json:"ok"`
		Data IssueResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.OK)
	assert.Equal(t, "ELECTRIC", resp.Data.Category)
	assert.Equal(t, StatusOpen, resp.Data.Status)
	assert.Equal(t, SeverityLow, resp.Data.Severity)
}

func TestCreateIssueMissingDescription(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	body := bytes.NewBufferString(`{"category":"GAS"}`)
	req := httptest.NewRequest(http.MethodPost, "/issues/", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	repo := &fakeRepo{
		updateStatusFn: func(
			ctx context.Context,
			id, status string,
		) (*Issue, error) {
			return &Issue{
				ID:          id,
				Category:    CategoryOther,
				Severity:    SeverityLow,
				Description: "d",
				Status:      status,
			}, nil
		},
	}
	router := newTestRouter(repo)

	body := bytes.NewBufferString(`{"status":"Completed"}`)
	req := httptest.NewRequest(
		http.MethodPut, "/issues/issue-1/status", body,
	)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK   bool          `json:"ok"`
		Data IssueResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, StatusResolved, resp.Data.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	router := newTestRouter(&fakeRepo{})

	body := bytes.NewBufferString(`{"status":"OPEN"}`)
	req := httptest.NewRequest(
		http.MethodPut, "/issues/missing/status", body,
	)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
