package usecase

import (
	"context"

	authdomain "edclass-backend/internal/auth/domain"
	"edclass-backend/internal/message/domain"
)

// MessageUsecase defines the interface for message business logic
type MessageUsecase interface {
	// Send persists a message from the sender to the recipient emails and
	// fans push notifications out to their devices. The message survives
	// even when notification fails; a non-nil error reports a recipient
	// resolution failure, never a push delivery failure.
	Send(ctx context.Context, sender *authdomain.User, receiverIDs []string, subject *string, content string) (*domain.Message, error)

	// Get loads one message.
	Get(id string) (*domain.Message, error)

	// SetState overwrites the message state, any state, last write wins.
	SetState(id string, state domain.MessageState) error

	// List returns the user's messages in the given scope, newest first.
	List(user *authdomain.User, scope domain.ListScope) ([]domain.Message, error)
}

// Notifier is the fan-out service consumed by Send.
type Notifier interface {
	Notify(ctx context.Context, emails []string, title, body string) error
}
