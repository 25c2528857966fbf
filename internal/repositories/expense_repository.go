package repositories

import (
	"errors"
	"fmt"

	"xman-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense entry
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense scoped to its owner
func (r *expenseRepository) GetByID(id, userID uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// GetAllForMonth returns the user's expenses for one month bucket,
// newest first.
func (r *expenseRepository) GetAllForMonth(userID uuid.UUID, month, year string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("created_at desc").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for month: %w", err)
	}
	return expenses, nil
}

// Update applies a partial update scoped to the owner and returns the
// refreshed row
func (r *expenseRepository) Update(id, userID uuid.UUID, fields map[string]interface{}) (*models.Expense, error) {
	result := r.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrExpenseNotFound
	}
	return r.GetByID(id, userID)
}

// Delete removes an expense only when the user owns it
func (r *expenseRepository) Delete(id, userID uuid.UUID) (bool, error) {
	result := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
