package dto

// CreatePresetRequest saves a quick-add template for recurring entries
type CreatePresetRequest struct {
	Title      string   `json:"title" form:"title" validate:"required,min=1,max=255"`
	Amount     string   `json:"amount" form:"amount" validate:"required,ledger_amount"`
	Categories []string `json:"categories" form:"categories" validate:"omitempty,dive,min=1,max=100"`
	Expense    *bool    `json:"expense" form:"expense" validate:"required"`
}

// PresetResponse is one saved template
type PresetResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Amount     string   `json:"amount"`
	Categories []string `json:"categories"`
	Expense    bool     `json:"expense"`
}
