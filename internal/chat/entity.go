// srikarboske | 2026
// entity.go

package chat

import "time"

// Message is an append-only chat entry scoped to a property. Messages are
// never updated or deleted; ordering is insertion order by created_at.
type Message struct {
	ID         string    `db:"id"`
	PropertyID string    `db:"property_id"`
	FromRole   string    `db:"from_role"`
	Text       string    `db:"text"`
	CreatedAt  time.Time `db:"created_at"`
}
