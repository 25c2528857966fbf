package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryOwner is the user_id sentinel marking a category as a
// system-wide default visible to every user. Default categories are not
// user-editable.
const DefaultCategoryOwner = "ALL"

// SevaCategoryName is the synthetic filter tag representing "income flagged
// for the 10% subtotal". It is a filter affordance, not a stored row.
const SevaCategoryName = "Seva"

// Category partitions ledger tags into disjoint income and expense
// namespaces via the Expense flag. UserID is a string rather than a uuid so
// the default-owner sentinel fits the same column.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	// No default tag: GORM omits zero-value fields that carry one, and the
	// column default would then flip income categories to expense.
	Expense   bool      `gorm:"not null" json:"expense"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// IsDefault reports whether this category is a shared default
func (c *Category) IsDefault() bool {
	return c.UserID == DefaultCategoryOwner
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// SevaCategory returns the synthetic tithe filter category. It carries a
// fixed zero id so the frontend can key on it; it never touches the store.
func SevaCategory() Category {
	return Category{
		ID:      uuid.Nil,
		Name:    SevaCategoryName,
		Expense: false,
		UserID:  DefaultCategoryOwner,
	}
}
