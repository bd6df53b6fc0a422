// srikarboske | 2026
// entity.go

package tenant

import (
	"time"

	"github.com/s225280351srikarboske/project/internal/property"
)

type Tenant struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Rent       float64   `db:"rent"`
	Status     string    `db:"status"`
	PropertyID string    `db:"property_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

const (
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

func ValidStatus(status string) bool {
	return status == StatusPaid || status == StatusOverdue
}

// TenantWithProperty is the joined read shape: every tenant row is returned
// with its referenced property populated.
type TenantWithProperty struct {
	Tenant
	Property property.Property `db:"property"`
}
