package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is a ledger row scoped to one user and one (month, year) bucket.
// Amount stays a decimal-as-string at rest; Categories is a comma-joined
// list of category names. Renaming a category does not rewrite historical
// rows (accepted staleness tradeoff of the denormalized column).
type Expense struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Amount     string    `gorm:"type:varchar(32);not null" json:"amount"`
	Day        string    `gorm:"type:varchar(2);not null" json:"day"`
	Month      string    `gorm:"type:varchar(2);not null;index:idx_expenses_bucket" json:"month"`
	Year       string    `gorm:"type:varchar(4);not null;index:idx_expenses_bucket" json:"year"`
	Categories string    `gorm:"type:text" json:"categories"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_expenses_bucket,priority:1" json:"user_id"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// CategoryTags returns the split category names; "" yields an empty list
func (e *Expense) CategoryTags() []string {
	return SplitCategoryTags(e.Categories)
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}
