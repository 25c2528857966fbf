package repositories

import (
	"errors"
	"fmt"

	"xman-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
)

// presetRepository implements PresetRepositoryInterface
type presetRepository struct {
	db *gorm.DB
}

// NewPresetRepository creates a new preset repository
func NewPresetRepository(db *gorm.DB) PresetRepositoryInterface {
	return &presetRepository{
		db: db,
	}
}

// Create creates a new preset
func (r *presetRepository) Create(preset *models.Preset) error {
	if err := r.db.Create(preset).Error; err != nil {
		return fmt.Errorf("failed to create preset: %w", err)
	}
	return nil
}

// GetByID retrieves a preset scoped to its owner
func (r *presetRepository) GetByID(id, userID uuid.UUID) (*models.Preset, error) {
	var preset models.Preset
	err := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&preset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}
	return &preset, nil
}

// ListAll returns the user's presets, newest first
func (r *presetRepository) ListAll(userID uuid.UUID) ([]models.Preset, error) {
	var presets []models.Preset
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&presets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

// Delete removes a preset only when the user owns it
func (r *presetRepository) Delete(id, userID uuid.UUID) (bool, error) {
	result := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Preset{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete preset: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
