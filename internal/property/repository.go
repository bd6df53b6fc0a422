// srikarboske | 2026
// repository.go

package property

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/s225280351srikarboske/project/internal/core"
)

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context, params ListPropertiesParams) ([]Property, error)
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id string) error
	AppendImages(ctx context.Context, id string, urls []string) (*Property, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const propertyColumns = `
	id, title, address_line1, address_city, address_state, address_postcode,
	rent, bedrooms, bathrooms, parking, images, status, description,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, p *Property) error {
	query := `
		INSERT INTO properties (
			id, title, address_line1, address_city, address_state,
			address_postcode, rent, bedrooms, bathrooms, parking, images,
			status, description
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, p, query,
		p.ID,
		p.Title,
		p.AddressLine1,
		p.AddressCity,
		p.AddressState,
		p.AddressPost,
		p.Rent,
		p.Bedrooms,
		p.Bathrooms,
		p.Parking,
		p.Images,
		p.Status,
		p.Description,
	)
	if err != nil {
		return fmt.Errorf("create property: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Property, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM properties WHERE id = $1`,
		propertyColumns,
	)

	var p Property
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get property: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}

	return &p, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListPropertiesParams,
) ([]Property, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	if params.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			`(title ILIKE $%d OR description ILIKE $%d
				OR address_city ILIKE $%d OR address_line1 ILIKE $%d)`,
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Query)+"%")
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM properties
		%s
		ORDER BY created_at DESC`,
		propertyColumns, whereClause)

	properties := []Property{}
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	return properties, nil
}

func (r *repository) Update(ctx context.Context, p *Property) error {
	query := `
		UPDATE properties
		SET title = $2, address_line1 = $3, address_city = $4,
		    address_state = $5, address_postcode = $6, rent = $7,
		    bedrooms = $8, bathrooms = $9, parking = $10, images = $11,
		    status = $12, description = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &p.UpdatedAt, query,
		p.ID,
		p.Title,
		p.AddressLine1,
		p.AddressCity,
		p.AddressState,
		p.AddressPost,
		p.Rent,
		p.Bedrooms,
		p.Bathrooms,
		p.Parking,
		p.Images,
		p.Status,
		p.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update property: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM properties WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete property: %w", core.ErrNotFound)
	}

	return nil
}

// AppendImages adds uploaded URLs to the stored list and returns the updated
// row. Image uploads are a separate round trip from property creation, so a
// property without images is a normal intermediate state.
func (r *repository) AppendImages(
	ctx context.Context,
	id string,
	urls []string,
) (*Property, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Images = append(p.Images, urls...)

	query := `
		UPDATE properties
		SET images = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err = r.db.GetContext(ctx, &p.UpdatedAt, query, id, p.Images)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("append images: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("append images: %w", err)
	}

	return p, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
) error {
	query := `
		UPDATE properties
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update property status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update property status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update property status: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM properties WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check property exists: %w", err)
	}

	return exists, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
