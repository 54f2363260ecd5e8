package repository

import (
	authdomain "edclass-backend/internal/auth/domain"
	"edclass-backend/internal/message/domain"
)

// MessageRepository owns message rows and their recipient lists.
type MessageRepository interface {
	// Create persists the message together with its recipients.
	Create(message *domain.Message) error

	// FindByID loads a message with recipients, or nil when absent.
	FindByID(id string) (*domain.Message, error)

	// ListForUser returns messages in the given scope ordered by creation
	// time, newest first. Inbox matches the user's email among recipients,
	// sent matches the user as sender, all is the union.
	ListForUser(user *authdomain.User, scope domain.ListScope) ([]domain.Message, error)

	// UpdateState overwrites only the state column.
	UpdateState(id string, state domain.MessageState) error
}
