// srikarboske | 2026
// entity.go

package user

import (
	"time"
)

// User is a credential record. Role is assigned at registration and there is
// deliberately no operation that changes it.
type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const (
	RoleAdmin  = "Admin"
	RoleTenant = "Tenant"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleTenant
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
