package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"xman-api/internal/dto"
	"xman-api/internal/models"
	"xman-api/internal/repositories"

	"github.com/google/uuid"
)

// ProfileService handles display-profile business logic
type ProfileService struct {
	profileRepo repositories.ProfileRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	logger      *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	profileRepo repositories.ProfileRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *slog.Logger,
) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetProfile loads the user's profile, creating a blank one if registration
// failed to persist it
func (s *ProfileService) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user for profile: %w", err)
	}

	profile = &models.Profile{
		UserID: userID,
		Email:  user.Email,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("blank profile created", slog.String("user_id", userID.String()))
	return profile, nil
}

// UpdateProfile applies a partial update to the user's profile
func (s *ProfileService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	fields := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		fields["name"] = name
	}
	if req.AvatarURL != "" {
		fields["avatar_url"] = req.AvatarURL
	}

	if len(fields) > 0 {
		if err := s.profileRepo.UpdateFields(userID, fields); err != nil {
			return nil, err
		}
	}

	return s.profileRepo.GetByUserID(userID)
}

// CompleteOnboarding names the profile and marks first-login setup as done
func (s *ProfileService) CompleteOnboarding(userID uuid.UUID, name string) (*models.Profile, error) {
	err := s.profileRepo.UpdateFields(userID, map[string]interface{}{
		"name":         strings.TrimSpace(name),
		"is_onboarded": true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("onboarding completed", slog.String("user_id", userID.String()))
	return s.profileRepo.GetByUserID(userID)
}
