package repositories

import (
	"errors"
	"fmt"

	"xman-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrIncomeNotFound = errors.New("income not found")
)

// incomeRepository implements IncomeRepositoryInterface
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(db *gorm.DB) IncomeRepositoryInterface {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income entry
func (r *incomeRepository) Create(income *models.Income) error {
	if err := r.db.Create(income).Error; err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}
	return nil
}

// GetByID retrieves an income entry scoped to its owner
func (r *incomeRepository) GetByID(id, userID uuid.UUID) (*models.Income, error) {
	var income models.Income
	err := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&income).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income: %w", err)
	}
	return &income, nil
}

// GetAllForMonth returns the user's income for one month bucket,
// newest first.
func (r *incomeRepository) GetAllForMonth(userID uuid.UUID, month, year string) ([]models.Income, error) {
	var entries []models.Income
	err := r.db.
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("created_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list income for month: %w", err)
	}
	return entries, nil
}

// Update applies a partial update scoped to the owner and returns the
// refreshed row
func (r *incomeRepository) Update(id, userID uuid.UUID, fields map[string]interface{}) (*models.Income, error) {
	result := r.db.Model(&models.Income{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update income: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrIncomeNotFound
	}
	return r.GetByID(id, userID)
}

// Delete removes an income entry only when the user owns it
func (r *incomeRepository) Delete(id, userID uuid.UUID) (bool, error) {
	result := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Income{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete income: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
