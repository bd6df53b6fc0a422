// srikarboske | 2026
// repository.go

package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/s225280351srikarboske/project/internal/core"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	ListByProperty(
		ctx context.Context,
		propertyID string,
		since *time.Time,
	) ([]Message, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	query := `
		INSERT INTO messages (id, property_id, from_role, text)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &m.CreatedAt, query,
		m.ID,
		m.PropertyID,
		m.FromRole,
		m.Text,
	)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

// ListByProperty returns messages oldest first. The since cursor is an
// exclusive lower bound: a row whose created_at equals the cursor is not
// re-delivered, which is what lets the polling client append results without
// deduplicating.
func (r *repository) ListByProperty(
	ctx context.Context,
	propertyID string,
	since *time.Time,
) ([]Message, error) {
	query := `
		SELECT id, property_id, from_role, text, created_at
		FROM messages
		WHERE property_id = $1
		ORDER BY created_at ASC`
	args := []any{propertyID}

	if since != nil {
		query = `
			SELECT id, property_id, from_role, text, created_at
			FROM messages
			WHERE property_id = $1 AND created_at > $2
			ORDER BY created_at ASC`
		args = append(args, *since)
	}

	messages := []Message{}
	if err := r.db.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}
