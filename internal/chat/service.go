// srikarboske | 2026
// service.go

package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/s225280351srikarboske/project/internal/core"
	"github.com/s225280351srikarboske/project/internal/middleware"
)

// PropertyChecker verifies the channel's property exists before a post.
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

// Post appends a message to a property's channel. The sender role comes from
// the caller's verified identity, never from the request body; anonymous
// posters are recorded as Tenant.
func (s *Service) Post(
	ctx context.Context,
	propertyID, text, callerRole string,
) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, core.ValidationError("message text is required")
	}

	exists, err := s.properties.Exists(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, core.NotFoundError("Property")
	}

	fromRole := middleware.RoleTenant
	if callerRole == middleware.RoleAdmin {
		fromRole = middleware.RoleAdmin
	}

	m := &Message{
		ID:         uuid.New().String(),
		PropertyID: propertyID,
		FromRole:   fromRole,
		Text:       text,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// List returns a property's messages ascending. With a cursor, only messages
// strictly newer than it are returned.
func (s *Service) List(
	ctx context.Context,
	propertyID string,
	since *time.Time,
) ([]Message, error) {
	exists, err := s.properties.Exists(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, core.NotFoundError("Property")
	}

	return s.repo.ListByProperty(ctx, propertyID, since)
}
