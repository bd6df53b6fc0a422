// srikarboske | 2026
// entity.go

package property

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Property struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	AddressLine1 string    `db:"address_line1"`
	AddressCity  string    `db:"address_city"`
	AddressState string    `db:"address_state"`
	AddressPost  string    `db:"address_postcode"`
	Rent         float64   `db:"rent"`
	Bedrooms     int       `db:"bedrooms"`
	Bathrooms    int       `db:"bathrooms"`
	Parking      bool      `db:"parking"`
	Images       ImageList `db:"images"`
	Status       string    `db:"status"`
	Description  string    `db:"description"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const (
	StatusAvailable = "AVAILABLE"
	StatusOccupied  = "OCCUPIED"
)

func ValidStatus(status string) bool {
	return status == StatusAvailable || status == StatusOccupied
}

// ImageList stores property image URLs as a jsonb column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = ImageList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("scan ImageList: unsupported type %T", src)
	}
}
