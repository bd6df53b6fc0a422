// srikarboske | 2026
// service_test.go

package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s225280351srikarboske/project/internal/core"
	"github.com/s225280351srikarboske/project/internal/middleware"
)

// memRepo keeps messages in memory and mirrors the cursor semantics of the
// real store: ascending order, since strictly exclusive.
type memRepo struct {
	messages []Message
	now      time.Time
}

func (m *memRepo) Create(ctx context.Context, msg *Message) error {
	m.now = m.now.Add(time.Second)
	msg.CreatedAt = m.now
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memRepo) ListByProperty(
	ctx context.Context,
	propertyID string,
	since *time.Time,
) ([]Message, error) {
	out := []Message{}
	for _, msg := range m.messages {
		if msg.PropertyID != propertyID {
			continue
		}
		if since != nil && !msg.CreatedAt.After(*since) {
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

type fakeProperties struct {
	exists bool
}

func (f *fakeProperties) Exists(
	ctx context.Context,
	id string,
) (bool, error) {
	return f.exists, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, &fakeProperties{exists: true})
}

func TestPostTrimsAndStores(t *testing.T) {
	repo := &memRepo{now: time.Now()}
	svc := newTestService(repo)

	m, err := svc.Post(context.Background(), "prop-1", "  Hi  ", "")
	require.NoError(t, err)

	assert.Equal(t, "Hi", m.Text)
	assert.Equal(t, "prop-1", m.PropertyID)
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestPostRejectsBlankText(t *testing.T) {
	svc := newTestService(&memRepo{now: time.Now()})

	_, err := svc.Post(context.Background(), "prop-1", "   ", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))
}

func TestPostUnknownProperty(t *testing.T) {
	repo := &memRepo{now: time.Now()}
	svc := NewService(repo, &fakeProperties{exists: false})

	_, err := svc.Post(context.Background(), "missing", "hello", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.Empty(t, repo.messages)
}

func TestPostDerivesRoleFromCaller(t *testing.T) {
	repo := &memRepo{now: time.Now()}
	svc := newTestService(repo)

	asAdmin, err := svc.Post(
		context.Background(), "prop-1", "rent reminder", middleware.RoleAdmin,
	)
	require.NoError(t, err)
	assert.Equal(t, middleware.RoleAdmin, asAdmin.FromRole)

	asTenant, err := svc.Post(
		context.Background(), "prop-1", "thanks", middleware.RoleTenant,
	)
	require.NoError(t, err)
	assert.Equal(t, middleware.RoleTenant, asTenant.FromRole)

	// Anonymous posters and unrecognized roles land on Tenant.
	anonymous, err := svc.Post(context.Background(), "prop-1", "hi", "")
	require.NoError(t, err)
	assert.Equal(t, middleware.RoleTenant, anonymous.FromRole)
}

func TestListSinceIsExclusive(t *testing.T) {
	repo := &memRepo{now: time.Now()}
	svc := newTestService(repo)

	_, err := svc.Post(context.Background(), "prop-1", "one", "")
	require.NoError(t, err)
	_, err = svc.Post(context.Background(), "prop-1", "two", "")
	require.NoError(t, err)
	third, err := svc.Post(context.Background(), "prop-1", "three", "")
	require.NoError(t, err)

	all, err := svc.List(context.Background(), "prop-1", nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "one", all[0].Text)
	assert.Equal(t, "three", all[2].Text)

	// The cursor equals the second message's timestamp; only the third may
	// come back.
	cursor := all[1].CreatedAt
	newer, err := svc.List(context.Background(), "prop-1", &cursor)
	require.NoError(t, err)
	require.Len(t, newer, 1)
	assert.Equal(t, third.ID, newer[0].ID)

	// A cursor at the newest message yields nothing.
	latest := newer[0].CreatedAt
	empty, err := svc.List(context.Background(), "prop-1", &latest)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListScopedToProperty(t *testing.T) {
	repo := &memRepo{now: time.Now()}
	svc := newTestService(repo)

	_, err := svc.Post(context.Background(), "prop-1", "for one", "")
	require.NoError(t, err)
	_, err = svc.Post(context.Background(), "prop-2", "for two", "")
	require.NoError(t, err)

	messages, err := svc.List(context.Background(), "prop-2", nil)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "for two", messages[0].Text)
}
