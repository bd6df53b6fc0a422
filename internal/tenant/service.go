// srikarboske | 2026
// service.go

package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/s225280351srikarboske/project/internal/core"
	"github.com/s225280351srikarboske/project/internal/property"
)

// PropertyChecker is the slice of the property service the tenant flow
// depends on.
type PropertyChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	db         *sqlx.DB
	repo       Repository
	properties PropertyChecker
}

func NewService(db *sqlx.DB, repo Repository, properties PropertyChecker) *Service {
	return &Service{
		db:         db,
		repo:       repo,
		properties: properties,
	}
}

// Create inserts a tenant after confirming the referenced property exists.
// Nothing is persisted when the lookup fails.
func (s *Service) Create(
	ctx context.Context,
	req *UpsertTenantRequest,
) (*TenantWithProperty, error) {
	if err := s.checkProperty(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusPaid
	}

	t := &Tenant{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      req.Phone,
		Rent:       req.Rent,
		Status:     status,
		PropertyID: req.PropertyID,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, t.ID)
}

func (s *Service) Get(
	ctx context.Context,
	id string,
) (*TenantWithProperty, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]TenantWithProperty, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req *UpsertTenantRequest,
) (*TenantWithProperty, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PropertyID != existing.PropertyID {
		if err := s.checkProperty(ctx, req.PropertyID); err != nil {
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}

	t := &Tenant{
		ID:         id,
		Name:       req.Name,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      req.Phone,
		Rent:       req.Rent,
		Status:     status,
		PropertyID: req.PropertyID,
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Assign moves a tenant onto a property and flips the property to OCCUPIED
// in one transaction, so occupancy never goes stale relative to the tenant
// row.
func (s *Service) Assign(
	ctx context.Context,
	req *AssignTenantRequest,
) (*TenantWithProperty, error) {
	if _, err := s.repo.GetByID(ctx, req.TenantID); err != nil {
		return nil, err
	}
	if err := s.checkProperty(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := NewRepository(tx).AssignProperty(
			ctx, req.TenantID, req.PropertyID,
		); err != nil {
			return err
		}
		return property.NewRepository(tx).UpdateStatus(
			ctx, req.PropertyID, property.StatusOccupied,
		)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, req.TenantID)
}

func (s *Service) checkProperty(ctx context.Context, id string) error {
	exists, err := s.properties.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check property %s: %w", id, err)
	}
	if !exists {
		return core.NotFoundError("Property")
	}
	return nil
}
