package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"xman-api/internal/dto"
	"xman-api/internal/models"
	"xman-api/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

const (
	demoEmail    = "demo@xman.local"
	demoPassword = "demo-password"
)

var seedExpenseTitles = []string{
	"groceries", "electricity bill", "petrol", "phone recharge",
	"dining out", "movie tickets", "gym membership", "house rent",
	"internet bill", "medicines",
}

// SeedService fills a development database with a demo user and a few
// months of plausible ledger data. Never wired up outside development.
type SeedService struct {
	userRepo        repositories.UserRepositoryInterface
	profileRepo     repositories.ProfileRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	ledgerService   LedgerServiceInterface
	passwordService PasswordServiceInterface
	logger          *slog.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(
	userRepo repositories.UserRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	ledgerService LedgerServiceInterface,
	passwordService PasswordServiceInterface,
	logger *slog.Logger,
) SeedServiceInterface {
	return &SeedService{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		categoryRepo:    categoryRepo,
		ledgerService:   ledgerService,
		passwordService: passwordService,
		logger:          logger,
	}
}

// SeedDemoData creates the demo user (idempotently) and backfills the given
// number of months with random expenses and income
func (s *SeedService) SeedDemoData(ctx context.Context, months int) (*models.User, error) {
	if months < 1 {
		months = 3
	}

	user, err := s.userRepo.GetByEmail(demoEmail)
	if err == nil {
		s.logger.Info("demo user already seeded", slog.String("user_id", user.ID.String()))
		return user, nil
	}

	hash, err := s.passwordService.HashPassword(demoPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	user = &models.User{
		Email:        demoEmail,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	profile := &models.Profile{
		UserID:      user.ID,
		Name:        gofakeit.Name(),
		Email:       demoEmail,
		IsOnboarded: true,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create demo profile: %w", err)
	}

	categories, err := s.categoryRepo.ListAll(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for seeding: %w", err)
	}
	var expenseTags, incomeTags []string
	for _, c := range categories {
		if c.Expense {
			expenseTags = append(expenseTags, c.Name)
		} else {
			incomeTags = append(incomeTags, c.Name)
		}
	}

	now := time.Now()
	for m := 0; m < months; m++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bucket := now.AddDate(0, -m, 0)
		if err := s.seedMonth(user.ID, bucket, expenseTags, incomeTags); err != nil {
			return nil, err
		}
	}

	s.logger.Info("demo data seeded",
		slog.String("user_id", user.ID.String()),
		slog.Int("months", months))

	return user, nil
}

func (s *SeedService) seedMonth(userID uuid.UUID, bucket time.Time, expenseTags, incomeTags []string) error {
	month := fmt.Sprintf("%02d", int(bucket.Month()))
	year := strconv.Itoa(bucket.Year())

	count := gofakeit.Number(8, 20)
	for i := 0; i < count; i++ {
		req := &dto.ExpenseRequest{
			Title:  gofakeit.RandomString(seedExpenseTitles),
			Amount: fmt.Sprintf("%.2f", gofakeit.Float64Range(50, 5000)),
			Day:    fmt.Sprintf("%02d", gofakeit.Number(1, 28)),
			Month:  month,
			Year:   year,
		}
		if len(expenseTags) > 0 && gofakeit.Bool() {
			req.Categories = []string{gofakeit.RandomString(expenseTags)}
		}
		if _, err := s.ledgerService.CreateExpense(userID, req); err != nil {
			return fmt.Errorf("failed to seed expense: %w", err)
		}
	}

	salary := &dto.IncomeRequest{
		Title:  "salary",
		Amount: fmt.Sprintf("%.2f", gofakeit.Float64Range(40000, 90000)),
		Day:    "01",
		Month:  month,
		Year:   year,
		Seva:   true,
	}
	if len(incomeTags) > 0 {
		salary.Categories = []string{incomeTags[0]}
	}
	if _, err := s.ledgerService.CreateIncome(userID, salary); err != nil {
		return fmt.Errorf("failed to seed income: %w", err)
	}

	if gofakeit.Bool() {
		side := &dto.IncomeRequest{
			Title:  "freelance work",
			Amount: fmt.Sprintf("%.2f", gofakeit.Float64Range(2000, 15000)),
			Day:    fmt.Sprintf("%02d", gofakeit.Number(5, 28)),
			Month:  month,
			Year:   year,
		}
		if _, err := s.ledgerService.CreateIncome(userID, side); err != nil {
			return fmt.Errorf("failed to seed income: %w", err)
		}
	}

	return nil
}
