// srikarboske | 2026
// entity.go

package customer

import "time"

// Customer is a billing record. Rows are never physically removed by the
// admin flow; delete sets is_deleted and the default listing filters it out.
type Customer struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Company   string    `db:"company"`
	Status    string    `db:"status"`
	IsDeleted bool      `db:"is_deleted"`
	DueAmount float64   `db:"due_amount"`
	Paid      bool      `db:"paid"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}
