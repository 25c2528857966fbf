package repositories

import (
	"errors"
	"fmt"

	"xman-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// ListAll returns the shared default categories plus the user's own,
// defaults first, each group ordered by name.
func (r *categoryRepository) ListAll(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("user_id IN ?", []string{models.DefaultCategoryOwner, userID.String()}).
		Order("user_id desc").
		Order("name asc").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListByType returns defaults plus user-owned categories of one kind
func (r *categoryRepository) ListByType(userID uuid.UUID, expense bool) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("user_id IN ?", []string{models.DefaultCategoryOwner, userID.String()}).
		Where("expense = ?", expense).
		Order("user_id desc").
		Order("name asc").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories by type: %w", err)
	}
	return categories, nil
}

// ListOwnedByType returns only the user's own categories of one kind
func (r *categoryRepository) ListOwnedByType(userID uuid.UUID, expense bool) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("user_id = ?", userID.String()).
		Where("expense = ?", expense).
		Order("name asc").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list owned categories: %w", err)
	}
	return categories, nil
}

// Delete removes a category only when the user owns it. Shared defaults
// never match the user_id clause, so they cannot be deleted here. The
// bool reports whether a row was actually removed.
func (r *categoryRepository) Delete(id uuid.UUID, userID uuid.UUID) (bool, error) {
	result := r.db.
		Where("id = ? AND user_id = ?", id, userID.String()).
		Delete(&models.Category{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete category: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
