// srikarboske | 2026
// dto.go

package tenant

import (
	"time"

	"github.com/s225280351srikarboske/project/internal/property"
)

type UpsertTenantRequest struct {
	Name       string  `json:"name"       validate:"required,min=1,max=200"`
	Email      string  `json:"email"      validate:"required,email"`
	Phone      string  `json:"phone"      validate:"max=40"`
	Rent       float64 `json:"rent"       validate:"gte=0"`
	Status     string  `json:"status"     validate:"omitempty,oneof=paid overdue"`
	PropertyID string  `json:"propertyId" validate:"required,uuid"`
}

type AssignTenantRequest struct {
	TenantID   string `json:"tenantId"   validate:"required,uuid"`
	PropertyID string `json:"propertyId" validate:"required,uuid"`
}

type TenantResponse struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Email     string                    `json:"email"`
	Phone     string                    `json:"phone"`
	Rent      float64                   `json:"rent"`
	Status    string                    `json:"status"`
	Property  property.PropertyResponse `json:"property"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

func ToTenantResponse(t *TenantWithProperty) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Phone:     t.Phone,
		Rent:      t.Rent,
		Status:    t.Status,
		Property:  property.ToPropertyResponse(&t.Property),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToTenantResponseList(tenants []TenantWithProperty) []TenantResponse {
	responses := make([]TenantResponse, 0, len(tenants))
	for i := range tenants {
		responses = append(responses, ToTenantResponse(&tenants[i]))
	}
	return responses
}
