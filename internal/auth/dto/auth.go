package dto

import authdomain "edclass-backend/internal/auth/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterRequest struct {
	Name            string          `json:"name" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	Password        string          `json:"password" binding:"required,min=6"`
	ConfirmPassword string          `json:"confirm_password" binding:"required"`
	Role            authdomain.Role `json:"role" binding:"required"`
	// Students links a registering parent to existing student accounts.
	Students []string `json:"students"`
}

type RegisterDeviceRequest struct {
	DeviceToken string `json:"device_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken string           `json:"access_token"`
	User        *authdomain.User `json:"user"`
}
