package usecase

import (
	authdomain "edclass-backend/internal/auth/domain"
	authdto "edclass-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new account; a registering parent is linked to the
	// student ids in the request.
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login verifies credentials and issues an access token.
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// ValidateToken parses an access token and loads its user.
	ValidateToken(token string) (*authdomain.User, error)

	// RegisterDevice records an FCM device token for the user.
	RegisterDevice(userID, deviceToken string) error
}
