// srikarboske | 2026
// repository.go

package issue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/s225280351srikarboske/project/internal/core"
)

type Repository interface {
	Create(ctx context.Context, i *Issue) error
	GetByID(ctx context.Context, id string) (*Issue, error)
	List(ctx context.Context, params ListIssuesParams) ([]Issue, error)
	UpdateStatus(ctx context.Context, id, status string) (*Issue, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const issueColumns = `
	id, property_id, category, severity, description, status,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, i *Issue) error {
	query := `
		INSERT INTO issues (
			id, property_id, category, severity, description, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, i, query,
		i.ID,
		i.PropertyID,
		i.Category,
		i.Severity,
		i.Description,
		i.Status,
	)
	if err != nil {
		return fmt.Errorf("create issue: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Issue, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM issues WHERE id = $1`,
		issueColumns,
	)

	var i Issue
	err := r.db.GetContext(ctx, &i, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get issue: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get issue: %w", err)
	}

	return &i, nil
}

// List returns issues most recent first, the order the dashboard renders
// without re-sorting.
func (r *repository) List(
	ctx context.Context,
	params ListIssuesParams,
) ([]Issue, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.PropertyID != "" {
		conditions = append(conditions,
			fmt.Sprintf("property_id = $%d", argIdx))
		args = append(args, params.PropertyID)
		argIdx++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM issues
		%s
		ORDER BY created_at DESC`,
		issueColumns, whereClause)

	issues := []Issue{}
	if err := r.db.SelectContext(ctx, &issues, query, args...); err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	return issues, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
) (*Issue, error) {
	query := fmt.Sprintf(`
		UPDATE issues
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`,
		issueColumns)

	var i Issue
	err := r.db.GetContext(ctx, &i, query, id, status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update issue status: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update issue status: %w", err)
	}

	return &i, nil
}
