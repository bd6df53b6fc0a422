// srikarboske | 2026
// service_test.go

package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s225280351srikarboske/project/internal/core"
	"github.com/s225280351srikarboske/project/internal/property"
)

type fakeRepo struct {
	created []*Tenant
	byID    map[string]*TenantWithProperty
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*TenantWithProperty{}}
}

func (f *fakeRepo) Create(ctx context.Context, t *Tenant) error {
	f.created = append(f.created, t)
	f.byID[t.ID] = &TenantWithProperty{
		Tenant:   *t,
		Property: property.Property{ID: t.PropertyID},
	}
	return nil
}

func (f *fakeRepo) GetByID(
	ctx context.Context,
	id string,
) (*TenantWithProperty, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return t, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]TenantWithProperty, error) {
	out := []TenantWithProperty{}
	for _, t := range f.byID {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, t *Tenant) error {
	if _, ok := f.byID[t.ID]; !ok {
		return core.ErrNotFound
	}
	f.byID[t.ID] = &TenantWithProperty{
		Tenant:   *t,
		Property: property.Property{ID: t.PropertyID},
	}
	return nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	t, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	t.Status = status
	return nil
}

func (f *fakeRepo) AssignProperty(
	ctx context.Context,
	id, propertyID string,
) error {
	t, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	t.PropertyID = propertyID
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.byID, id)
	return nil
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

func TestCreateValidatesProperty(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(nil, repo, &fakeProperties{exists: false})

	_, err := svc.Create(context.Background(), &UpsertTenantRequest{
		Name:       "Jordan Reyes",
		Email:      "jordan@example.com",
		PropertyID: "3f1e9e62-9e6e-4b43-9a61-2b54d2b1a111",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.Empty(t, repo.created, "no tenant row may be written")
}

func TestCreateDefaultsToPaid(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(nil, repo, &fakeProperties{exists: true})

	created, err := svc.Create(context.Background(), &UpsertTenantRequest{
		Name:       "Jordan Reyes",
		Email:      "Jordan@Example.com",
		PropertyID: "3f1e9e62-9e6e-4b43-9a61-2b54d2b1a111",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, created.Status)
	assert.Equal(t, "jordan@example.com", created.Email)
	assert.NotEmpty(t, created.ID)
}

func TestUpdateRevalidatesChangedProperty(t *testing.T) {
	repo := newFakeRepo()
	properties := &fakeProperties{exists: true}
	svc := NewService(nil, repo, properties)

	created, err := svc.Create(context.Background(), &UpsertTenantRequest{
		Name:       "Jordan Reyes",
		Email:      "jordan@example.com",
		PropertyID: "3f1e9e62-9e6e-4b43-9a61-2b54d2b1a111",
	})
	require.NoError(t, err)

	// Moving the tenant to a property that does not exist must fail.
	properties.exists = false
	_, err = svc.Update(context.Background(), created.ID,
		&UpsertTenantRequest{
			Name:       "Jordan Reyes",
			Email:      "jordan@example.com",
			PropertyID: "9d2f5b10-1111-4b43-9a61-2b54d2b1a222",
		})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))

	// Keeping the same property skips the existence check.
	updated, err := svc.Update(context.Background(), created.ID,
		&UpsertTenantRequest{
			Name:       "Jordan M. Reyes",
			Email:      "jordan@example.com",
			PropertyID: created.PropertyID,
		})
	require.NoError(t, err)
	assert.Equal(t, "Jordan M. Reyes", updated.Name)
}

func TestUpdatePreservesStatusWhenOmitted(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(nil, repo, &fakeProperties{exists: true})

	created, err := svc.Create(context.Background(), &UpsertTenantRequest{
		Name:       "Jordan Reyes",
		Email:      "jordan@example.com",
		Status:     StatusOverdue,
		PropertyID: "3f1e9e62-9e6e-4b43-9a61-2b54d2b1a111",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID,
		&UpsertTenantRequest{
			Name:       "Jordan Reyes",
			Email:      "jordan@example.com",
			PropertyID: created.PropertyID,
		})
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, updated.Status)
}
