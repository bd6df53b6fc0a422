// srikarboske | 2026
// service.go

package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/s225280351srikarboske/project/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	req *UpsertPropertyRequest,
) (*Property, error) {
	status := req.Status
	if status == "" {
		status = StatusAvailable
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("create property: %w", core.ErrInvalidInput)
	}

	p := &Property{
		ID:           uuid.New().String(),
		Title:        req.Title,
		AddressLine1: req.Address.Line1,
		AddressCity:  req.Address.City,
		AddressState: req.Address.State,
		AddressPost:  req.Address.Postcode,
		Rent:         req.Rent,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Parking:      req.Parking,
		Images:       ImageList(req.Images),
		Status:       status,
		Description:  req.Description,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	params ListPropertiesParams,
) ([]Property, error) {
	if params.Status != "" && !ValidStatus(params.Status) {
		return nil, fmt.Errorf("list properties: %w", core.ErrInvalidInput)
	}
	return s.repo.List(ctx, params)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req *UpsertPropertyRequest,
) (*Property, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("update property: %w", core.ErrInvalidInput)
	}

	images := existing.Images
	if req.Images != nil {
		images = ImageList(req.Images)
	}

	p := &Property{
		ID:           id,
		Title:        req.Title,
		AddressLine1: req.Address.Line1,
		AddressCity:  req.Address.City,
		AddressState: req.Address.State,
		AddressPost:  req.Address.Postcode,
		Rent:         req.Rent,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Parking:      req.Parking,
		Images:       images,
		Status:       status,
		Description:  req.Description,
		CreatedAt:    existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) AttachImages(
	ctx context.Context,
	id string,
	urls []string,
) (*Property, error) {
	return s.repo.AppendImages(ctx, id, urls)
}

// MarkOccupied flips a property to OCCUPIED. Called from the tenant
// assignment flow inside its transaction.
func (s *Service) MarkOccupied(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, StatusOccupied)
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}
