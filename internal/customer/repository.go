// srikarboske | 2026
// repository.go

package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/s225280351srikarboske/project/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	GetActiveByEmail(ctx context.Context, email string) (*Customer, error)
	List(ctx context.Context, includeDeleted bool) ([]Customer, error)
	Update(ctx context.Context, c *Customer) error
	SoftDelete(ctx context.Context, id string) error
	SetDue(ctx context.Context, id string, amount float64) (*Customer, error)
	MarkPaidByEmail(ctx context.Context, email string) (*Customer, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const customerColumns = `
	id, name, email, phone, company, status, is_deleted, due_amount, paid,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (
			id, name, email, phone, company, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING is_deleted, due_amount, paid, created_at, updated_at`

	err := r.db.GetContext(ctx, c, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Company,
		c.Status,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create customer: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create customer: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Customer, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM customers WHERE id = $1`,
		customerColumns,
	)

	var c Customer
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get customer: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return &c, nil
}

// GetActiveByEmail backs the tenant self-service routes. Soft-deleted rows
// are invisible there.
func (r *repository) GetActiveByEmail(
	ctx context.Context,
	email string,
) (*Customer, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM customers WHERE email = $1 AND is_deleted = FALSE`,
		customerColumns,
	)

	var c Customer
	err := r.db.GetContext(ctx, &c, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get customer by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer by email: %w", err)
	}

	return &c, nil
}

func (r *repository) List(
	ctx context.Context,
	includeDeleted bool,
) ([]Customer, error) {
	whereClause := "WHERE is_deleted = FALSE"
	if includeDeleted {
		whereClause = ""
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM customers
		%s
		ORDER BY created_at DESC`,
		customerColumns, whereClause)

	customers := []Customer{}
	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return customers, nil
}

func (r *repository) Update(ctx context.Context, c *Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, company = $5, status = $6,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &c.UpdatedAt, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Company,
		c.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update customer: %w", core.ErrNotFound)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update customer: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update customer: %w", err)
	}

	return nil
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE customers
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete customer: %w", core.ErrNotFound)
	}

	return nil
}

// SetDue records a new outstanding amount and resets paid.
func (r *repository) SetDue(
	ctx context.Context,
	id string,
	amount float64,
) (*Customer, error) {
	query := fmt.Sprintf(`
		UPDATE customers
		SET due_amount = $2, paid = FALSE, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`,
		customerColumns)

	var c Customer
	err := r.db.GetContext(ctx, &c, query, id, amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("set due: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set due: %w", err)
	}

	return &c, nil
}

func (r *repository) MarkPaidByEmail(
	ctx context.Context,
	email string,
) (*Customer, error) {
	query := fmt.Sprintf(`
		UPDATE customers
		SET paid = TRUE, updated_at = NOW()
		WHERE email = $1 AND is_deleted = FALSE
		RETURNING %s`,
		customerColumns)

	var c Customer
	err := r.db.GetContext(ctx, &c, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mark paid: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	return &c, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
