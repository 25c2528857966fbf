package dto

import "time"

// Auth Request DTOs

// RegisterRequest contains user registration data
type RegisterRequest struct {
	Email      string `json:"email" form:"email" validate:"required,email"`
	Password   string `json:"password" form:"password" validate:"required,min=8"`
	Name       string `json:"name" form:"name" validate:"required,min=1,max=100"`
	RedirectTo string `json:"redirectTo" form:"redirectTo" validate:"omitempty,local_redirect"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Email      string `json:"email" form:"email" validate:"required,email"`
	Password   string `json:"password" form:"password" validate:"required"`
	RedirectTo string `json:"redirectTo" form:"redirectTo" validate:"omitempty,local_redirect"`
}

// CallbackRequest exchanges an externally issued token pair for a session
type CallbackRequest struct {
	AccessToken  string `json:"access_token" form:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" form:"refresh_token" validate:"required"`
	RedirectTo   string `json:"redirectTo" form:"redirectTo" validate:"omitempty,local_redirect"`
}

// ForgotPasswordRequest asks for a password reset link
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// ResetPasswordRequest sets a new password using a reset token
type ResetPasswordRequest struct {
	Token    string `json:"token" form:"token" validate:"required"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

// Auth Response DTOs

// SessionResponse describes the logged-in session
type SessionResponse struct {
	UserID     string    `json:"userId"`
	Email      string    `json:"email"`
	ExpiresAt  time.Time `json:"expiresAt"`
	RedirectTo string    `json:"redirectTo,omitempty"`
}

// UserResponse represents the authenticated user
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	IsOnboarded bool      `json:"isOnboarded"`
	CreatedAt   time.Time `json:"createdAt"`
}
