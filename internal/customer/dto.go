// srikarboske | 2026
// dto.go

package customer

import "time"

type UpsertCustomerRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=200"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"max=40"`
	Company string `json:"company" validate:"max=200"`
	Status  string `json:"status"  validate:"omitempty,oneof=Active Inactive"`
}

type SetDueRequest struct {
	DueAmount float64 `json:"dueAmount" validate:"gte=0"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	IsDeleted bool      `json:"isDeleted"`
	DueAmount float64   `json:"dueAmount"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToCustomerResponse(c *Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Status:    c.Status,
		IsDeleted: c.IsDeleted,
		DueAmount: c.DueAmount,
		Paid:      c.Paid,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToCustomerResponseList(customers []Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}
	return responses
}
