// srikarboske | 2026
// service.go

package issue

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/s225280351srikarboske/project/internal/core"
)

// PropertyChecker verifies that an optionally-referenced property exists.
type PropertyChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo       Repository
	properties PropertyChecker
}

func NewService(repo Repository, properties PropertyChecker) *Service {
	return &Service{repo: repo, properties: properties}
}

// Create files a new issue. The property reference is optional; when present
// it must resolve. Severity defaults to LOW and new issues always start OPEN.
func (s *Service) Create(
	ctx context.Context,
	req *CreateIssueRequest,
) (*Issue, error) {
	category := strings.ToUpper(strings.TrimSpace(req.Category))
	if !ValidCategory(category) {
		return nil, core.ValidationError("invalid issue category")
	}

	severity := strings.ToUpper(strings.TrimSpace(req.Severity))
	if severity == "" {
		severity = SeverityLow
	}
	if !ValidSeverity(severity) {
		return nil, core.ValidationError("invalid issue severity")
	}

	var propertyID sql.NullString
	if req.PropertyID != "" {
		exists, err := s.properties.Exists(ctx, req.PropertyID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, core.NotFoundError("Property")
		}
		propertyID = sql.NullString{String: req.PropertyID, Valid: true}
	}

	i := &Issue{
		ID:          uuid.New().String(),
		PropertyID:  propertyID,
		Category:    category,
		Severity:    severity,
		Description: req.Description,
		Status:      StatusOpen,
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	return i, nil
}

func (s *Service) List(
	ctx context.Context,
	params ListIssuesParams,
) ([]Issue, error) {
	if params.Status != "" {
		canonical, ok := NormalizeStatus(params.Status)
		if !ok {
			return nil, core.ValidationError("invalid issue status")
		}
		params.Status = canonical
	}

	return s.repo.List(ctx, params)
}

// UpdateStatus moves an issue to the given state. Raw input can be a
// canonical token or a dashboard label; applying the current status again is
// a no-op, not an error.
func (s *Service) UpdateStatus(
	ctx context.Context,
	id, raw string,
) (*Issue, error) {
	canonical, ok := NormalizeStatus(raw)
	if !ok {
		return nil, core.ValidationError("invalid issue status")
	}

	return s.repo.UpdateStatus(ctx, id, canonical)
}
