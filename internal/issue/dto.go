// srikarboske | 2026
// dto.go

package issue

import "time"

type CreateIssueRequest struct {
	PropertyID  string `json:"propertyId"  validate:"omitempty,uuid"`
	Category    string `json:"category"    validate:"required"`
	Severity    string `json:"severity"    validate:"omitempty"`
	Description string `json:"description" validate:"required,min=1,max=5000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type IssueResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId,omitempty"`
	Category    string    `json:"category"`
	Severity    string    `json:"severity"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListIssuesParams struct {
	PropertyID string
	Status     string
}

func ToIssueResponse(i *Issue) IssueResponse {
	resp := IssueResponse{
		ID:          i.ID,
		Category:    i.Category,
		Severity:    i.Severity,
		Description: i.Description,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
	if i.PropertyID.Valid {
		resp.PropertyID = i.PropertyID.String
	}
	return resp
}

func ToIssueResponseList(issues []Issue) []IssueResponse {
	responses := make([]IssueResponse, 0, len(issues))
	for i := range issues {
		responses = append(responses, ToIssueResponse(&issues[i]))
	}
	return responses
}
