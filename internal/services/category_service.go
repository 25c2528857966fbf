package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"xman-api/internal/models"
	"xman-api/internal/repositories"

	"github.com/google/uuid"
)

const (
	CategoryKindAll     = "all"
	CategoryKindExpense = "expense"
	CategoryKindIncome  = "income"
)

var (
	ErrInvalidCategoryKind  = errors.New("category kind must be all, expense or income")
	ErrCategoryNameTaken    = errors.New("a category with this name already exists")
	ErrCategoryNotDeletable = errors.New("default categories cannot be deleted")
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *slog.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListCategories returns defaults plus user-owned categories, optionally
// narrowed to one side of the expense/income partition
func (s *CategoryService) ListCategories(userID uuid.UUID, kind string) ([]models.Category, error) {
	switch strings.ToLower(kind) {
	case CategoryKindAll, "":
		return s.categoryRepo.ListAll(userID)
	case CategoryKindExpense:
		return s.categoryRepo.ListByType(userID, true)
	case CategoryKindIncome:
		return s.categoryRepo.ListByType(userID, false)
	default:
		return nil, ErrInvalidCategoryKind
	}
}

// CreateCategory adds a user-owned category. Names are unique per user per
// kind, case-insensitively, across both defaults and owned rows.
func (s *CategoryService) CreateCategory(userID uuid.UUID, name string, expense bool) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}

	existing, err := s.categoryRepo.ListByType(userID, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing categories: %w", err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return nil, ErrCategoryNameTaken
		}
	}
	if !expense && strings.EqualFold(name, models.SevaCategoryName) {
		// The synthetic filter tag occupies this name
		return nil, ErrCategoryNameTaken
	}

	category := &models.Category{
		Name:    name,
		Expense: expense,
		UserID:  userID.String(),
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created",
		slog.String("user_id", userID.String()),
		slog.String("name", name))

	return category, nil
}

// DeleteCategory removes a user-owned category. Defaults are refused with
// ErrCategoryNotDeletable; someone else's category reports not-deleted.
func (s *CategoryService) DeleteCategory(userID, categoryID uuid.UUID) (bool, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get category: %w", err)
	}

	if category.IsDefault() {
		return false, ErrCategoryNotDeletable
	}

	deleted, err := s.categoryRepo.Delete(categoryID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	if deleted {
		s.logger.Info("category deleted",
			slog.String("user_id", userID.String()),
			slog.String("category_id", categoryID.String()))
	}

	return deleted, nil
}
