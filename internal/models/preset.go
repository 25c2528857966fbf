package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Preset is a quick-add template for a recurring ledger entry.
type Preset struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Amount     string    `gorm:"type:varchar(32);not null" json:"amount"`
	Categories string    `gorm:"type:text" json:"categories"`
	Expense    bool      `gorm:"not null" json:"expense"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Preset
func (p *Preset) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for Preset
func (p *Preset) TableName() string {
	return "presets"
}
