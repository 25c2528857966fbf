package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// MaxFailedLoginAttempts locks the account once reached
	MaxFailedLoginAttempts = 3
	// AccountLockDuration is how long a locked account stays locked
	AccountLockDuration = 30 * time.Minute
)

// User is an authenticated identity. Ledger rows and categories reference it
// by id; display data lives on the Profile.
type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email               string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string         `gorm:"type:varchar(255);not null" json:"-"`
	FailedLoginAttempts int            `gorm:"default:0" json:"-"`
	LockedAt            *time.Time     `json:"-"`
	LastLoginAt         *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsLocked returns true while the lockout window is active
func (u *User) IsLocked() bool {
	if u.LockedAt == nil {
		return false
	}
	return time.Now().Before(u.LockedAt.Add(AccountLockDuration))
}

// IncrementFailedAttempts bumps the counter and locks the account at the limit
func (u *User) IncrementFailedAttempts() {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= MaxFailedLoginAttempts {
		now := time.Now()
		u.LockedAt = &now
	}
}

// ResetFailedAttempts clears the counter and any lock
func (u *User) ResetFailedAttempts() {
	u.FailedLoginAttempts = 0
	u.LockedAt = nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
