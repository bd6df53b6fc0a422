// srikarboske | 2026
// entity.go

package issue

import (
	"database/sql"
	"strings"
	"time"
)

type Issue struct {
	ID          string         `db:"id"`
	PropertyID  sql.NullString `db:"property_id"`
	Category    string         `db:"category"`
	Severity    string         `db:"severity"`
	Description string         `db:"description"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

const (
	CategoryElectric = "ELECTRIC"
	CategoryPlumbing = "PLUMBING"
	CategoryGas      = "GAS"
	CategoryOther    = "OTHER"

	SeverityLow    = "LOW"
	SeverityMedium = "MEDIUM"
	SeverityHigh   = "HIGH"

	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryElectric, CategoryPlumbing, CategoryGas, CategoryOther:
		return true
	}
	return false
}

func ValidSeverity(severity string) bool {
	switch severity {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

func ValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// statusSynonyms maps the human-readable labels the admin dashboard submits
// onto canonical tokens.
var statusSynonyms = map[string]string{
	"PENDING":    StatusOpen,
	"IN PROCESS": StatusInProgress,
	"COMPLETED":  StatusResolved,
}

// NormalizeStatus resolves a raw status string to its canonical enum token.
// Input is case-insensitive and accepts dashboard synonyms; the second return
// is false when nothing matches.
func NormalizeStatus(raw string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if ValidStatus(upper) {
		return upper, true
	}
	if canonical, ok := statusSynonyms[upper]; ok {
		return canonical, true
	}
	return "", false
}
