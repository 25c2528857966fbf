package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Income mirrors Expense plus the Seva flag: rows with Seva set count toward
// the 10%-of-income subtotal.
type Income struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Amount     string    `gorm:"type:varchar(32);not null" json:"amount"`
	Day        string    `gorm:"type:varchar(2);not null" json:"day"`
	Month      string    `gorm:"type:varchar(2);not null;index:idx_income_bucket" json:"month"`
	Year       string    `gorm:"type:varchar(4);not null;index:idx_income_bucket" json:"year"`
	Categories string    `gorm:"type:text" json:"categories"`
	Seva       bool      `gorm:"not null;default:false" json:"seva"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_income_bucket,priority:1" json:"user_id"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Income
func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// CategoryTags returns the split category names; "" yields an empty list
func (i *Income) CategoryTags() []string {
	return SplitCategoryTags(i.Categories)
}

// TableName returns the table name for Income
func (i *Income) TableName() string {
	return "income"
}
