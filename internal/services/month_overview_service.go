package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"xman-api/internal/models"
	"xman-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var ten = decimal.NewFromInt(10)

// MonthOverviewService merges the expense and income tables into the
// dashboard timeline for one month: both tables fetched concurrently, merged
// newest-first, totaled before any tag filter is applied, then narrowed to
// the selected tags.
type MonthOverviewService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	incomeRepo   repositories.IncomeRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewMonthOverviewService creates a new month overview service
func NewMonthOverviewService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) MonthOverviewServiceInterface {
	return &MonthOverviewService{
		expenseRepo:  expenseRepo,
		incomeRepo:   incomeRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// GetMonthOverview builds the merged monthly view. tags narrows
// FilteredEntries only; totals always cover the whole month. An unknown tag
// simply matches nothing.
func (s *MonthOverviewService) GetMonthOverview(ctx context.Context, userID uuid.UUID, month, year string, tags []string) (*models.MonthOverview, error) {
	start := time.Now()

	var (
		expenses   []models.Expense
		income     []models.Income
		categories []models.Category
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.GetAllForMonth(userID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		income, err = s.incomeRepo.GetAllForMonth(userID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.ListAll(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.RecordOverviewRequest("error")
		return nil, fmt.Errorf("failed to load month data: %w", err)
	}

	entries := mergeEntries(expenses, income)

	totalExpense := decimal.Zero
	totalIncome := decimal.Zero
	sevaIncome := decimal.Zero
	for _, e := range entries {
		amount := models.ParseAmount(e.Amount)
		if e.IsIncome() {
			totalIncome = totalIncome.Add(amount)
			if e.Seva {
				sevaIncome = sevaIncome.Add(amount)
			}
		} else {
			totalExpense = totalExpense.Add(amount)
		}
	}

	overview := &models.MonthOverview{
		Entries:         entries,
		FilteredEntries: filterEntries(entries, tags),
		TotalExpense:    totalExpense,
		TotalIncome:     totalIncome,
		TotalTenPercent: sevaIncome.Div(ten),
		Categories:      sortCategoriesForFilter(categories, tags),
		Tags:            tags,
	}

	s.metrics.RecordOverviewRequest("success")
	s.metrics.ObserveOverviewDuration(time.Since(start))
	s.logger.Debug("month overview built",
		slog.String("user_id", userID.String()),
		slog.String("month", month),
		slog.String("year", year),
		slog.Int("entries", len(entries)))

	return overview, nil
}

// mergeEntries zips both tables into one timeline sorted newest-first. The
// sort is stable so rows sharing a timestamp keep their per-table order.
func mergeEntries(expenses []models.Expense, income []models.Income) []models.LedgerEntry {
	entries := make([]models.LedgerEntry, 0, len(expenses)+len(income))
	for _, e := range expenses {
		entries = append(entries, models.EntryFromExpense(e))
	}
	for _, i := range income {
		entries = append(entries, models.EntryFromIncome(i))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries
}

// filterEntries keeps entries carrying any selected tag. Selecting the Seva
// tag additionally matches income rows with the seva flag set, regardless of
// their stored categories. No tags means no filtering.
func filterEntries(entries []models.LedgerEntry, tags []string) []models.LedgerEntry {
	if len(tags) == 0 {
		return entries
	}

	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}
	sevaSelected := tagSet[models.SevaCategoryName]

	filtered := make([]models.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if sevaSelected && e.Seva {
			filtered = append(filtered, e)
			continue
		}
		for _, c := range e.Categories {
			if tagSet[c] {
				filtered = append(filtered, e)
				break
			}
		}
	}

	return filtered
}

// sortCategoriesForFilter reorders the category list for the filter bar:
// selected tags float to the front, the synthetic Seva tag sits between
// selected and unselected, and with nothing selected Seva leads the list.
func sortCategoriesForFilter(categories []models.Category, tags []string) []models.Category {
	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}

	result := make([]models.Category, 0, len(categories)+1)

	if tagSet[models.SevaCategoryName] {
		result = append(result, models.SevaCategory())
	}
	for _, c := range categories {
		if tagSet[c.Name] {
			result = append(result, c)
		}
	}
	if !tagSet[models.SevaCategoryName] {
		result = append(result, models.SevaCategory())
	}
	for _, c := range categories {
		if !tagSet[c.Name] {
			result = append(result, c)
		}
	}

	return result
}
