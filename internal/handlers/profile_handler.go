package handlers

import (
	"net/http"

	"xman-api/internal/dto"
	"xman-api/internal/errors"
	"xman-api/internal/models"
	"xman-api/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile display and onboarding
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the authenticated user's profile
//
// Method: GET /app/profile
// Authentication: Required
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: profileResponse(profile)})
}

// Update applies a partial profile update
//
// Method: POST /app/profile
// Authentication: Required
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	profile, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    profileResponse(profile),
		Message: "Profile updated",
	})
}

// Onboard completes first-login onboarding
//
// Method: POST /app/onboard
// Authentication: Required
func (h *ProfileHandler) Onboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.OnboardRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	profile, err := h.profileService.CompleteOnboarding(userID, req.Name)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    profileResponse(profile),
		Message: "Welcome aboard",
		Meta:    dto.ActionResponse{Success: true, RedirectTo: "/app/dashboard"},
	})
}

func profileResponse(p *models.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:      p.UserID.String(),
		Name:        p.Name,
		Email:       p.Email,
		AvatarURL:   p.AvatarURL,
		IsOnboarded: p.IsOnboarded,
	}
}
