// srikarboske | 2026
// dto.go

package property

import (
	"time"
)

type Address struct {
	Line1    string `json:"line1"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// UpsertPropertyRequest is the body for create and full update. Status
// defaults to AVAILABLE when omitted.
type UpsertPropertyRequest struct {
	Title       string   `json:"title"       validate:"required,min=1,max=200"`
	Address     Address  `json:"address"`
	Rent        float64  `json:"rent"        validate:"gte=0"`
	Bedrooms    int      `json:"bedrooms"    validate:"gte=0"`
	Bathrooms   int      `json:"bathrooms"   validate:"gte=0"`
	Parking     bool     `json:"parking"`
	Images      []string `json:"images"`
	Status      string   `json:"status"      validate:"omitempty,oneof=AVAILABLE OCCUPIED"`
	Description string   `json:"description" validate:"max=5000"`
}

// PropertyResponse is the canonical wire shape the dashboards render; the
// nested address mirrors the stored document layout the frontend expects.
type PropertyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Address     Address   `json:"address"`
	Rent        float64   `json:"rent"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Parking     bool      `json:"parking"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ImagesResponse struct {
	Images []string `json:"images"`
}

type ListPropertiesParams struct {
	Query  string
	Status string
}

func ToPropertyResponse(p *Property) PropertyResponse {
	images := p.Images
	if images == nil {
		images = ImageList{}
	}

	return PropertyResponse{
		ID:    p.ID,
		Title: p.Title,
		Address: Address{
			Line1:    p.AddressLine1,
			City:     p.AddressCity,
			State:    p.AddressState,
			Postcode: p.AddressPost,
		},
		Rent:        p.Rent,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Parking:     p.Parking,
		Images:      []string(images),
		Status:      p.Status,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToPropertyResponseList(properties []Property) []PropertyResponse {
	responses := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		responses = append(responses, ToPropertyResponse(&p))
	}
	return responses
}
