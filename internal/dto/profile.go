package dto

// UpdateProfileRequest applies a partial profile update
type UpdateProfileRequest struct {
	Name      string `json:"name" form:"name" validate:"omitempty,min=1,max=255"`
	AvatarURL string `json:"avatarUrl" form:"avatarUrl" validate:"omitempty,url"`
}

// OnboardRequest completes first-login onboarding
type OnboardRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=1,max=255"`
}

// ProfileResponse is the user's display profile
type ProfileResponse struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	IsOnboarded bool   `json:"isOnboarded"`
}
