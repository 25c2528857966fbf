package services

import (
	"context"
	"time"

	"xman-api/internal/dto"
	"xman-api/internal/models"

	"github.com/google/uuid"
)

// PasswordServiceInterface defines the contract for password operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// TokenServiceInterface defines the contract for JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
}

// SessionServiceInterface encodes and decodes the signed session cookie
type SessionServiceInterface interface {
	EncodeSession(accessToken, refreshToken string, userID uuid.UUID) (string, error)
	DecodeSession(cookieValue string) (*models.SessionClaims, error)
	NewSessionCookie(value string) *SessionCookie
	ClearedSessionCookie() *SessionCookie
}

// Session is the decoded and verified content of an auth cookie
type Session struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
	Refreshed    bool
	// CookieValue carries the re-signed cookie when Refreshed is set
	CookieValue string
}

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, *Session, error)
	Login(req *dto.LoginRequest, ipAddress string) (*models.User, *Session, error)
	Authenticate(cookieValue string) (*models.User, *Session, error)
	EstablishSession(accessToken, refreshToken string) (*models.User, *Session, error)
	ForgotPassword(email string) (string, error)
	ResetPassword(token, newPassword string) error
}

// CategoryServiceInterface defines the contract for category operations
type CategoryServiceInterface interface {
	ListCategories(userID uuid.UUID, kind string) ([]models.Category, error)
	CreateCategory(userID uuid.UUID, name string, expense bool) (*models.Category, error)
	DeleteCategory(userID, categoryID uuid.UUID) (bool, error)
}

// LedgerServiceInterface defines the contract for expense and income CRUD
type LedgerServiceInterface interface {
	CreateExpense(userID uuid.UUID, req *dto.ExpenseRequest) (*models.Expense, error)
	UpdateExpense(userID, expenseID uuid.UUID, req *dto.ExpenseRequest) (*models.Expense, error)
	DeleteExpense(userID, expenseID uuid.UUID) (bool, error)
	GetExpense(userID, expenseID uuid.UUID) (*models.Expense, error)
	CreateIncome(userID uuid.UUID, req *dto.IncomeRequest) (*models.Income, error)
	UpdateIncome(userID, incomeID uuid.UUID, req *dto.IncomeRequest) (*models.Income, error)
	DeleteIncome(userID, incomeID uuid.UUID) (bool, error)
	GetIncome(userID, incomeID uuid.UUID) (*models.Income, error)
}

// MonthOverviewServiceInterface builds the merged monthly dashboard view
type MonthOverviewServiceInterface interface {
	GetMonthOverview(ctx context.Context, userID uuid.UUID, month, year string, tags []string) (*models.MonthOverview, error)
}

// ProfileServiceInterface defines the contract for profile operations
type ProfileServiceInterface interface {
	GetProfile(userID uuid.UUID) (*models.Profile, error)
	UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error)
	CompleteOnboarding(userID uuid.UUID, name string) (*models.Profile, error)
}

// PresetServiceInterface defines the contract for quick-add presets
type PresetServiceInterface interface {
	ListPresets(userID uuid.UUID) ([]models.Preset, error)
	CreatePreset(userID uuid.UUID, req *dto.CreatePresetRequest) (*models.Preset, error)
	DeletePreset(userID, presetID uuid.UUID) (bool, error)
}

// ThemeServiceInterface resolves and persists the UI theme preference
type ThemeServiceInterface interface {
	ResolveTheme(cookieValue string) string
	NewThemeCookie(theme string) *SessionCookie
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	RecordAuthEvent(event, status string)
	RecordLedgerMutation(entryType, operation string)
	RecordOverviewRequest(status string)
	ObserveOverviewDuration(duration time.Duration)
	RecordAPIError(code string)
	SetActiveSessions(count float64)
}

// SeedServiceInterface populates a development database with fake data
type SeedServiceInterface interface {
	SeedDemoData(ctx context.Context, months int) (*models.User, error)
}
