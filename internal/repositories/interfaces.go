package repositories

import (
	"xman-api/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateFailedLoginAttempts(user *models.User) error
	Delete(userID uuid.UUID) error
}

// ProfileRepositoryInterface defines the contract for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByUserID(userID uuid.UUID) (*models.Profile, error)
	Update(profile *models.Profile) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
}

// CategoryRepositoryInterface defines the contract for category repository
// operations. Default categories carry the "ALL" owner sentinel and are
// returned alongside user-owned rows by the ListAll* methods.
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	ListAll(userID uuid.UUID) ([]models.Category, error)
	ListByType(userID uuid.UUID, expense bool) ([]models.Category, error)
	ListOwnedByType(userID uuid.UUID, expense bool) ([]models.Category, error)
	Delete(id uuid.UUID, userID uuid.UUID) (bool, error)
}

// ExpenseRepositoryInterface defines the contract for expense ledger
// operations. Every query scopes by user_id in addition to the primary key.
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id, userID uuid.UUID) (*models.Expense, error)
	GetAllForMonth(userID uuid.UUID, month, year string) ([]models.Expense, error)
	Update(id, userID uuid.UUID, fields map[string]interface{}) (*models.Expense, error)
	Delete(id, userID uuid.UUID) (bool, error)
}

// IncomeRepositoryInterface mirrors the expense contract for income rows
type IncomeRepositoryInterface interface {
	Create(income *models.Income) error
	GetByID(id, userID uuid.UUID) (*models.Income, error)
	GetAllForMonth(userID uuid.UUID, month, year string) ([]models.Income, error)
	Update(id, userID uuid.UUID, fields map[string]interface{}) (*models.Income, error)
	Delete(id, userID uuid.UUID) (bool, error)
}

// PresetRepositoryInterface defines the contract for quick-add presets
type PresetRepositoryInterface interface {
	Create(preset *models.Preset) error
	GetByID(id, userID uuid.UUID) (*models.Preset, error)
	ListAll(userID uuid.UUID) ([]models.Preset, error)
	Delete(id, userID uuid.UUID) (bool, error)
}
