package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is the unified view of an expense or income row on the merged
// monthly timeline. Categories is already split into tag names.
type LedgerEntry struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Amount     string    `json:"amount"`
	Day        string    `json:"day"`
	Month      string    `json:"month"`
	Year       string    `json:"year"`
	Categories []string  `json:"categories"`
	Seva       bool      `json:"seva"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsIncome reports whether the entry came from the income table
func (e *LedgerEntry) IsIncome() bool {
	return e.Type == EntryTypeIncome
}

// MonthOverview is the dashboard view model for one (month, year) bucket:
// the full merged timeline, the tag-filtered subset, pre-filter totals, and
// the category list reordered for the filter bar.
type MonthOverview struct {
	Entries         []LedgerEntry   `json:"data"`
	FilteredEntries []LedgerEntry   `json:"filtered_data"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalTenPercent decimal.Decimal `json:"total_ten_percent"`
	Categories      []Category      `json:"categories"`
	Tags            []string        `json:"tags"`
}

// Balance returns income minus expense for the month
func (o *MonthOverview) Balance() decimal.Decimal {
	return o.TotalIncome.Sub(o.TotalExpense)
}

// EntryFromExpense converts a stored expense row to a timeline entry
func EntryFromExpense(e Expense) LedgerEntry {
	return LedgerEntry{
		ID:         e.ID,
		Type:       EntryTypeExpense,
		Title:      e.Title,
		Amount:     e.Amount,
		Day:        e.Day,
		Month:      e.Month,
		Year:       e.Year,
		Categories: e.CategoryTags(),
		CreatedAt:  e.CreatedAt,
	}
}

// EntryFromIncome converts a stored income row to a timeline entry
func EntryFromIncome(i Income) LedgerEntry {
	return LedgerEntry{
		ID:         i.ID,
		Type:       EntryTypeIncome,
		Title:      i.Title,
		Amount:     i.Amount,
		Day:        i.Day,
		Month:      i.Month,
		Year:       i.Year,
		Categories: i.CategoryTags(),
		Seva:       i.Seva,
		CreatedAt:  i.CreatedAt,
	}
}
