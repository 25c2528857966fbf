package dto

import "time"

// Ledger Request DTOs

// ExpenseRequest carries a new or edited expense entry. Categories arrives
// as repeated form values; Amount is sanitized server-side before storage.
type ExpenseRequest struct {
	Title      string   `json:"title" form:"title" validate:"required,min=1,max=255"`
	Amount     string   `json:"amount" form:"amount" validate:"required,ledger_amount"`
	Day        string   `json:"day" form:"day" validate:"required,calendar_day"`
	Month      string   `json:"month" form:"month" validate:"required,calendar_month"`
	Year       string   `json:"year" form:"year" validate:"required,calendar_year"`
	Categories []string `json:"categories" form:"categories" validate:"omitempty,dive,min=1,max=100"`
	RedirectTo string   `json:"redirectTo" form:"redirectTo" validate:"omitempty,local_redirect"`
}

// IncomeRequest mirrors ExpenseRequest plus the seva flag
type IncomeRequest struct {
	Title      string   `json:"title" form:"title" validate:"required,min=1,max=255"`
	Amount     string   `json:"amount" form:"amount" validate:"required,ledger_amount"`
	Day        string   `json:"day" form:"day" validate:"required,calendar_day"`
	Month      string   `json:"month" form:"month" validate:"required,calendar_month"`
	Year       string   `json:"year" form:"year" validate:"required,calendar_year"`
	Categories []string `json:"categories" form:"categories" validate:"omitempty,dive,min=1,max=100"`
	Seva       bool     `json:"seva" form:"seva"`
	RedirectTo string   `json:"redirectTo" form:"redirectTo" validate:"omitempty,local_redirect"`
}

// DeleteEntryRequest targets one owned ledger row
type DeleteEntryRequest struct {
	ID         string `json:"id" form:"id" validate:"required,uuid4"`
	RedirectTo string `json:"redirectTo" form:"redirectTo" validate:"omitempty,local_redirect"`
}

// Ledger Response DTOs

// EntryResponse is one ledger row as returned to clients
type EntryResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Amount     string    `json:"amount"`
	Day        string    `json:"day"`
	Month      string    `json:"month"`
	Year       string    `json:"year"`
	Categories []string  `json:"categories"`
	Seva       bool      `json:"seva,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ActionResponse is the uniform result of form-post style mutations
type ActionResponse struct {
	Success    bool   `json:"success"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// MonthOverviewResponse is the merged dashboard payload for one month
type MonthOverviewResponse struct {
	Month           string             `json:"month"`
	Year            string             `json:"year"`
	Entries         []EntryResponse    `json:"entries"`
	FilteredEntries []EntryResponse    `json:"filteredEntries"`
	TotalExpense    string             `json:"totalExpense"`
	TotalIncome     string             `json:"totalIncome"`
	TotalTenPercent string             `json:"totalTenPer"`
	Balance         string             `json:"balance"`
	Categories      []CategoryResponse `json:"categories"`
	Tags            []string           `json:"tags"`
}
