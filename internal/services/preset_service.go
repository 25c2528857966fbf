package services

import (
	"fmt"
	"log/slog"
	"strings"

	"xman-api/internal/dto"
	"xman-api/internal/models"
	"xman-api/internal/repositories"

	"github.com/google/uuid"
)

// PresetService handles quick-add template business logic
type PresetService struct {
	presetRepo repositories.PresetRepositoryInterface
	logger     *slog.Logger
}

// NewPresetService creates a new preset service
func NewPresetService(presetRepo repositories.PresetRepositoryInterface, logger *slog.Logger) PresetServiceInterface {
	return &PresetService{
		presetRepo: presetRepo,
		logger:     logger,
	}
}

// ListPresets returns the user's saved templates
func (s *PresetService) ListPresets(userID uuid.UUID) ([]models.Preset, error) {
	return s.presetRepo.ListAll(userID)
}

// CreatePreset saves a quick-add template
func (s *PresetService) CreatePreset(userID uuid.UUID, req *dto.CreatePresetRequest) (*models.Preset, error) {
	expense := true
	if req.Expense != nil {
		expense = *req.Expense
	}

	preset := &models.Preset{
		Title:      strings.TrimSpace(req.Title),
		Amount:     models.SanitizeAmount(req.Amount),
		Categories: models.JoinCategoryTags(req.Categories),
		Expense:    expense,
		UserID:     userID,
	}

	if err := s.presetRepo.Create(preset); err != nil {
		return nil, fmt.Errorf("failed to create preset: %w", err)
	}

	s.logger.Info("preset created",
		slog.String("user_id", userID.String()),
		slog.String("preset_id", preset.ID.String()))

	return preset, nil
}

// DeletePreset removes an owned template
func (s *PresetService) DeletePreset(userID, presetID uuid.UUID) (bool, error) {
	return s.presetRepo.Delete(presetID, userID)
}
