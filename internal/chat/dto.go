// srikarboske | 2026
// dto.go

package chat

import "time"

type PostMessageRequest struct {
	Text string `json:"text"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	FromRole   string    `json:"fromRole"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToMessageResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		FromRole:   m.FromRole,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
	}
}

func ToMessageResponseList(messages []Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ToMessageResponse(&messages[i]))
	}
	return responses
}
