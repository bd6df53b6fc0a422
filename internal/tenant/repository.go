// srikarboske | 2026
// repository.go

package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/s225280351srikarboske/project/internal/core"
)

type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	GetByID(ctx context.Context, id string) (*TenantWithProperty, error)
	List(ctx context.Context) ([]TenantWithProperty, error)
	Update(ctx context.Context, t *Tenant) error
	UpdateStatus(ctx context.Context, id, status string) error
	AssignProperty(ctx context.Context, id, propertyID string) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const joinedColumns = `
	t.id, t.name, t.email, t.phone, t.rent, t.status, t.property_id,
	t.created_at, t.updated_at,
	p.id AS "property.id",
	p.title AS "property.title",
	p.address_line1 AS "property.address_line1",
	p.address_city AS "property.address_city",
	p.address_state AS "property.address_state",
	p.address_postcode AS "property.address_postcode",
	p.rent AS "property.rent",
	p.bedrooms AS "property.bedrooms",
	p.bathrooms AS "property.bathrooms",
	p.parking AS "property.parking",
	p.images AS "property.images",
	p.status AS "property.status",
	p.description AS "property.description",
	p.created_at AS "property.created_at",
	p.updated_at AS "property.updated_at"`

func (r *repository) Create(ctx context.Context, t *Tenant) error {
	query := `
		INSERT INTO addtenants (
			id, name, email, phone, rent, status, property_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, t, query,
		t.ID,
		t.Name,
		t.Email,
		t.Phone,
		t.Rent,
		t.Status,
		t.PropertyID,
	)
	if err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*TenantWithProperty, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM addtenants t
		JOIN properties p ON p.id = t.property_id
		WHERE t.id = $1`,
		joinedColumns)

	var t TenantWithProperty
	err := r.db.GetContext(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get tenant: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}

	return &t, nil
}

func (r *repository) List(ctx context.Context) ([]TenantWithProperty, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM addtenants t
		JOIN properties p ON p.id = t.property_id
		ORDER BY t.created_at DESC`,
		joinedColumns)

	tenants := []TenantWithProperty{}
	if err := r.db.SelectContext(ctx, &tenants, query); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	return tenants, nil
}

func (r *repository) Update(ctx context.Context, t *Tenant) error {
	query := `
		UPDATE addtenants
		SET name = $2, email = $3, phone = $4, rent = $5, status = $6,
		    property_id = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &t.UpdatedAt, query,
		t.ID,
		t.Name,
		t.Email,
		t.Phone,
		t.Rent,
		t.Status,
		t.PropertyID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update tenant: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}

	return nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
) error {
	query := `
		UPDATE addtenants
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update tenant status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tenant status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update tenant status: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) AssignProperty(
	ctx context.Context,
	id, propertyID string,
) error {
	query := `
		UPDATE addtenants
		SET property_id = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, propertyID)
	if err != nil {
		return fmt.Errorf("assign property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("assign property: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("assign property: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM addtenants WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete tenant: %w", core.ErrNotFound)
	}

	return nil
}
