package dto

// CreateCategoryRequest adds a user-owned category to one side of the
// expense/income partition
type CreateCategoryRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=1,max=100"`
	Expense *bool  `json:"expense" form:"expense" validate:"required"`
}

// DeleteCategoryRequest removes a user-owned category
type DeleteCategoryRequest struct {
	ID string `json:"id" form:"id" validate:"required,uuid4"`
}

// CategoryResponse is one category as returned to clients
type CategoryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Expense bool   `json:"expense"`
	Default bool   `json:"default"`
}

// CategoryListResponse groups categories for pickers
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
