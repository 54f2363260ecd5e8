package repository

import authdomain "edclass-backend/internal/auth/domain"

// UserRepository is the identity directory consumed by the rest of the system.
type UserRepository interface {
	Create(user *authdomain.User) error

	FindByID(id string) (*authdomain.User, error)

	FindByEmail(email string) (*authdomain.User, error)

	// FindByEmails resolves a batch of recipient emails in one query.
	// Unknown emails are silently absent from the result.
	FindByEmails(emails []string) ([]authdomain.User, error)

	// FindByRole returns one user with the given role, used to locate the
	// system account.
	FindByRole(role authdomain.Role) (*authdomain.User, error)
}

// DeviceTokenRepository owns per-user FCM registration tokens.
type DeviceTokenRepository interface {
	// SaveToken appends a token for the user unless that exact token is
	// already registered for them.
	SaveToken(userID, token string) error

	// TokensByUserID returns the user's tokens in registration order.
	TokensByUserID(userID string) ([]string, error)
}

// GuardianRepository is the relationship index between students and parents.
type GuardianRepository interface {
	Link(studentID, parentID string) error

	GuardiansOf(studentID string) ([]authdomain.User, error)

	KidsOf(parentID string) ([]authdomain.User, error)
}
