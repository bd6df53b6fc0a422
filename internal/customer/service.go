// srikarboske | 2026
// service.go

package customer

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	req *UpsertCustomerRequest,
) (*Customer, error) {
	status := req.Status
	if status == "" {
		status = StatusActive
	}

	c := &Customer{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Email:   normalizeEmail(req.Email),
		Phone:   req.Phone,
		Company: req.Company,
		Status:  status,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(
	ctx context.Context,
	includeDeleted bool,
) ([]Customer, error) {
	return s.repo.List(ctx, includeDeleted)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req *UpsertCustomerRequest,
) (*Customer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}

	existing.Name = req.Name
	existing.Email = normalizeEmail(req.Email)
	existing.Phone = req.Phone
	existing.Company = req.Company
	existing.Status = status

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) SetDue(
	ctx context.Context,
	id string,
	amount float64,
) (*Customer, error) {
	return s.repo.SetDue(ctx, id, amount)
}

// GetMyRecord resolves the billing record for the email carried in the
// caller's token. Callers never pass an id here.
func (s *Service) GetMyRecord(
	ctx context.Context,
	email string,
) (*Customer, error) {
	return s.repo.GetActiveByEmail(ctx, normalizeEmail(email))
}

func (s *Service) MarkPaid(
	ctx context.Context,
	email string,
) (*Customer, error) {
	return s.repo.MarkPaidByEmail(ctx, normalizeEmail(email))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
