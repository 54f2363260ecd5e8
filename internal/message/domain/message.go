package domain

import "time"

// MessageState is the delivery state of a message. Pending at creation; any
// later state is set by an explicit state update. Writes are last-wins and
// no transition ordering is enforced.
type MessageState string

const (
	StatePending  MessageState = "pending"
	StateFailed   MessageState = "failed"
	StateSent     MessageState = "sent"
	StateReceived MessageState = "received"
	StateRead     MessageState = "read"
)

// IsValid reports whether s is one of the known states.
func (s MessageState) IsValid() bool {
	switch s {
	case StatePending, StateFailed, StateSent, StateReceived, StateRead:
		return true
	}
	return false
}

// Message is a system or user message addressed to a set of recipient
// emails. State is the only field that changes after creation.
type Message struct {
	ID         string             `json:"id" gorm:"primaryKey"`
	SenderID   string             `json:"sender_id" gorm:"index;not null"`
	Subject    *string            `json:"subject,omitempty"`
	Content    string             `json:"content"`
	State      MessageState       `json:"state" gorm:"not null"`
	CreatedAt  time.Time          `json:"created_at" gorm:"index"`
	Recipients []MessageRecipient `json:"-" gorm:"foreignKey:MessageID"`
}

// ReceiverEmails returns the recipient emails in the order the sender gave.
func (m *Message) ReceiverEmails() []string {
	emails := make([]string, 0, len(m.Recipients))
	for _, r := range m.Recipients {
		emails = append(emails, r.Email)
	}
	return emails
}

// MessageRecipient is one addressed email of a message. Position preserves
// the sender's ordering.
type MessageRecipient struct {
	ID        uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	MessageID string `json:"-" gorm:"index;not null"`
	Email     string `json:"email" gorm:"index;not null"`
	Position  int    `json:"-" gorm:"not null"`
}

// ListScope selects which messages a listing returns.
type ListScope string

const (
	ScopeInbox ListScope = "inbox"
	ScopeSent  ListScope = "sent"
	ScopeAll   ListScope = "all"
)

// ParseScope maps a path segment to a ListScope.
func ParseScope(s string) (ListScope, bool) {
	switch ListScope(s) {
	case ScopeInbox, ScopeSent, ScopeAll:
		return ListScope(s), true
	}
	return "", false
}
