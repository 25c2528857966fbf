package handlers

import (
	"net/http"

	"xman-api/internal/dto"
	"xman-api/internal/errors"
	"xman-api/internal/models"
	"xman-api/internal/repositories"
	"xman-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense entry CRUD
type ExpenseHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(ledgerService services.LedgerServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{ledgerService: ledgerService}
}

// Create stores a new expense entry
//
// Method: POST /app/expenses/new
// Authentication: Required
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.ledgerService.CreateExpense(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    expenseResponse(expense),
		Message: "Expense added",
	})
}

// Get loads one owned expense entry, typically to populate the edit form
//
// Method: GET /app/expenses/:id
// Authentication: Required
func (h *ExpenseHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entry ID"))
	}

	expense, err := h.ledgerService.GetExpense(userID, expenseID)
	if err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.LedgerEntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: expenseResponse(expense)})
}

// Update edits an owned expense entry
//
// Method: POST /app/expenses/:id/edit
// Authentication: Required
//
// A row owned by another user is indistinguishable from a missing one.
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entry ID"))
	}

	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.ledgerService.UpdateExpense(userID, expenseID, &req)
	if err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.LedgerEntryNotFound)
		}
		return SendSystemError(c, err)
	}

	redirectTo := req.RedirectTo
	if redirectTo == "" {
		redirectTo = "/app/dashboard"
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    expenseResponse(expense),
		Message: "Expense updated",
		Meta:    dto.ActionResponse{Success: true, RedirectTo: redirectTo},
	})
}

// Delete removes an owned expense entry
//
// Method: POST /app/expenses/delete
// Authentication: Required
//
// Deleting a missing or foreign row reports success=false rather than an
// error, matching the form-post contract.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.DeleteEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expenseID, err := uuid.Parse(req.ID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entry ID"))
	}

	deleted, err := h.ledgerService.DeleteExpense(userID, expenseID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ActionResponse{
		Success:    deleted,
		RedirectTo: req.RedirectTo,
	})
}

func expenseResponse(e *models.Expense) dto.EntryResponse {
	return dto.EntryResponse{
		ID:         e.ID.String(),
		Type:       models.EntryTypeExpense,
		Title:      e.Title,
		Amount:     e.Amount,
		Day:        e.Day,
		Month:      e.Month,
		Year:       e.Year,
		Categories: e.CategoryTags(),
		CreatedAt:  e.CreatedAt,
	}
}
