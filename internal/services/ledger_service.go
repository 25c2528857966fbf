package services

import (
	"fmt"
	"log/slog"
	"strings"

	"xman-api/internal/dto"
	"xman-api/internal/models"
	"xman-api/internal/repositories"

	"github.com/google/uuid"
)

// LedgerService handles expense and income CRUD. Amounts are sanitized to
// the stored [0-9.] form here, so nothing below this layer sees raw input.
type LedgerService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	incomeRepo  repositories.IncomeRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &LedgerService{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateExpense stores a new expense entry
func (s *LedgerService) CreateExpense(userID uuid.UUID, req *dto.ExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		Title:      strings.TrimSpace(req.Title),
		Amount:     models.SanitizeAmount(req.Amount),
		Day:        req.Day,
		Month:      req.Month,
		Year:       req.Year,
		Categories: models.JoinCategoryTags(req.Categories),
		UserID:     userID,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.metrics.RecordLedgerMutation(models.EntryTypeExpense, "create")
	s.logger.Info("expense created",
		slog.String("user_id", userID.String()),
		slog.String("expense_id", expense.ID.String()))

	return expense, nil
}

// UpdateExpense edits an owned expense entry
func (s *LedgerService) UpdateExpense(userID, expenseID uuid.UUID, req *dto.ExpenseRequest) (*models.Expense, error) {
	expense, err := s.expenseRepo.Update(expenseID, userID, map[string]interface{}{
		"title":      strings.TrimSpace(req.Title),
		"amount":     models.SanitizeAmount(req.Amount),
		"day":        req.Day,
		"month":      req.Month,
		"year":       req.Year,
		"categories": models.JoinCategoryTags(req.Categories),
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordLedgerMutation(models.EntryTypeExpense, "update")
	return expense, nil
}

// DeleteExpense removes an owned expense entry; a row belonging to another
// user reports not-deleted rather than an error
func (s *LedgerService) DeleteExpense(userID, expenseID uuid.UUID) (bool, error) {
	deleted, err := s.expenseRepo.Delete(expenseID, userID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.metrics.RecordLedgerMutation(models.EntryTypeExpense, "delete")
	}
	return deleted, nil
}

// GetExpense loads one owned expense entry
func (s *LedgerService) GetExpense(userID, expenseID uuid.UUID) (*models.Expense, error) {
	return s.expenseRepo.GetByID(expenseID, userID)
}

// CreateIncome stores a new income entry
func (s *LedgerService) CreateIncome(userID uuid.UUID, req *dto.IncomeRequest) (*models.Income, error) {
	income := &models.Income{
		Title:      strings.TrimSpace(req.Title),
		Amount:     models.SanitizeAmount(req.Amount),
		Day:        req.Day,
		Month:      req.Month,
		Year:       req.Year,
		Categories: models.JoinCategoryTags(req.Categories),
		Seva:       req.Seva,
		UserID:     userID,
	}

	if err := s.incomeRepo.Create(income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	s.metrics.RecordLedgerMutation(models.EntryTypeIncome, "create")
	s.logger.Info("income created",
		slog.String("user_id", userID.String()),
		slog.String("income_id", income.ID.String()))

	return income, nil
}

// UpdateIncome edits an owned income entry
func (s *LedgerService) UpdateIncome(userID, incomeID uuid.UUID, req *dto.IncomeRequest) (*models.Income, error) {
	income, err := s.incomeRepo.Update(incomeID, userID, map[string]interface{}{
		"title":      strings.TrimSpace(req.Title),
		"amount":     models.SanitizeAmount(req.Amount),
		"day":        req.Day,
		"month":      req.Month,
		"year":       req.Year,
		"categories": models.JoinCategoryTags(req.Categories),
		"seva":       req.Seva,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordLedgerMutation(models.EntryTypeIncome, "update")
	return income, nil
}

// DeleteIncome removes an owned income entry
func (s *LedgerService) DeleteIncome(userID, incomeID uuid.UUID) (bool, error) {
	deleted, err := s.incomeRepo.Delete(incomeID, userID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.metrics.RecordLedgerMutation(models.EntryTypeIncome, "delete")
	}
	return deleted, nil
}

// GetIncome loads one owned income entry
func (s *LedgerService) GetIncome(userID, incomeID uuid.UUID) (*models.Income, error) {
	return s.incomeRepo.GetByID(incomeID, userID)
}
