package dto

import (
	"time"

	"edclass-backend/internal/message/domain"
)

type SendMessageRequest struct {
	ReceiverIDs []string `json:"receiver_ids" binding:"required,min=1"`
	Subject     *string  `json:"subject"`
	Content     string   `json:"content" binding:"required"`
}

type UpdateStateRequest struct {
	State domain.MessageState `json:"state" binding:"required"`
}

// MessageResponse is the wire shape of a message; recipients flattened back
// to the email list the sender provided.
type MessageResponse struct {
	ID          string              `json:"id"`
	SenderID    string              `json:"sender_id"`
	ReceiverIDs []string            `json:"receiver_ids"`
	Subject     *string             `json:"subject,omitempty"`
	Content     string              `json:"content"`
	State       domain.MessageState `json:"state"`
	CreatedAt   time.Time           `json:"created_at"`
}

func FromMessage(m *domain.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		ReceiverIDs: m.ReceiverEmails(),
		Subject:     m.Subject,
		Content:     m.Content,
		State:       m.State,
		CreatedAt:   m.CreatedAt,
	}
}

func FromMessages(messages []domain.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, FromMessage(&messages[i]))
	}
	return out
}
