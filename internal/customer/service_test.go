// srikarboske | 2026
// service_test.go

package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s225280351srikarboske/project/internal/core"
)

// memRepo is an in-memory stand-in that mirrors the soft-delete and
// unique-email behavior of the real store.
type memRepo struct {
	rows map[string]*Customer
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[string]*Customer{}}
}

func (m *memRepo) Create(ctx context.Context, c *Customer) error {
	for _, row := range m.rows {
		if row.Email == c.Email {
			return core.ErrDuplicateKey
		}
	}
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*Customer, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (m *memRepo) GetActiveByEmail(
	ctx context.Context,
	email string,
) (*Customer, error) {
	for _, row := range m.rows {
		if row.Email == email && !row.IsDeleted {
			cp := *row
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memRepo) List(
	ctx context.Context,
	includeDeleted bool,
) ([]Customer, error) {
	out := []Customer{}
	for _, row := range m.rows {
		if row.IsDeleted && !includeDeleted {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, c *Customer) error {
	if _, ok := m.rows[c.ID]; !ok {
		return core.ErrNotFound
	}
	for id, row := range m.rows {
		if id != c.ID && row.Email == c.Email {
			return core.ErrDuplicateKey
		}
	}
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memRepo) SoftDelete(ctx context.Context, id string) error {
	row, ok := m.rows[id]
	if !ok {
		return core.ErrNotFound
	}
	row.IsDeleted = true
	return nil
}

func (m *memRepo) SetDue(
	ctx context.Context,
	id string,
	amount float64,
) (*Customer, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	row.DueAmount = amount
	row.Paid = false
	cp := *row
	return &cp, nil
}

func (m *memRepo) MarkPaidByEmail(
	ctx context.Context,
	email string,
) (*Customer, error) {
	for _, row := range m.rows {
		if row.Email == email && !row.IsDeleted {
			row.Paid = true
			cp := *row
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func TestCreateNormalizesAndDefaults(t *testing.T) {
	svc := NewService(newMemRepo())

	c, err := svc.Create(context.Background(), &UpsertCustomerRequest{
		Name:  "Acme Holdings",
		Email: " Billing@Acme.COM ",
	})
	require.NoError(t, err)

	assert.Equal(t, "billing@acme.com", c.Email)
	assert.Equal(t, StatusActive, c.Status)
	assert.False(t, c.IsDeleted)
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Create(context.Background(), &UpsertCustomerRequest{
		Name:  "Acme Holdings",
		Email: "billing@acme.com",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &UpsertCustomerRequest{
		Name:  "Acme Two",
		Email: "BILLING@acme.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrDuplicateKey))
}

func TestSoftDeleteAndListVisibility(t *testing.T) {
	svc := NewService(newMemRepo())

	c, err := svc.Create(context.Background(), &UpsertCustomerRequest{
		Name:  "Acme Holdings",
		Email: "billing@acme.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), c.ID))

	// The row still exists, flagged deleted.
	fetched, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsDeleted)

	visible, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsDeleted)
}

func TestSetDueResetsPaid(t *testing.T) {
	svc := NewService(newMemRepo())

	c, err := svc.Create(context.Background(), &UpsertCustomerRequest{
		Name:  "Acme Holdings",
		Email: "billing@acme.com",
	})
	require.NoError(t, err)

	_, err = svc.MarkPaid(context.Background(), "billing@acme.com")
	require.NoError(t, err)

	updated, err := svc.SetDue(context.Background(), c.ID, 450)
	require.NoError(t, err)
	assert.Equal(t, 450.0, updated.DueAmount)
	assert.False(t, updated.Paid)
}

func TestSelfServiceScopedByEmail(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Create(context.Background(), &UpsertCustomerRequest{
		Name:  "Acme Holdings",
		Email: "billing@acme.com",
	})
	require.NoError(t, err)

	mine, err := svc.GetMyRecord(context.Background(), "Billing@Acme.com")
	require.NoError(t, err)
	assert.Equal(t, "billing@acme.com", mine.Email)

	_, err = svc.GetMyRecord(context.Background(), "other@acme.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))

	paid, err := svc.MarkPaid(context.Background(), "billing@acme.com")
	require.NoError(t, err)
	assert.True(t, paid.Paid)
}

func TestSelfServiceIgnoresDeletedRecords(t *testing.T) {
	svc := NewService(newMemRepo())

	c, err := svc.Create(context.Background(), &UpsertCustomerRequest{
		Name:  "Acme Holdings",
		Email: "billing@acme.com",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), c.ID))

	_, err = svc.GetMyRecord(context.Background(), "billing@acme.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}
