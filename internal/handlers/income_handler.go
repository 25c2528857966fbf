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

// IncomeHandler handles income entry CRUD
type IncomeHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(ledgerService services.LedgerServiceInterface) *IncomeHandler {
	return &IncomeHandler{ledgerService: ledgerService}
}

// Create stores a new income entry
//
// Method: POST /app/income/new
// Authentication: Required
func (h *IncomeHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.IncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	income, err := h.ledgerService.CreateIncome(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    incomeResponse(income),
		Message: "Income added",
	})
}

// Get loads one owned income entry
//
// Method: GET /app/income/:id
// Authentication: Required
func (h *IncomeHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entry ID"))
	}

	income, err := h.ledgerService.GetIncome(userID, incomeID)
	if err != nil {
		if err == repositories.ErrIncomeNotFound {
			return SendError(c, errors.LedgerEntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: incomeResponse(income)})
}

// Update edits an owned income entry
//
// Method: POST /app/income/:id/edit
// Authentication: Required
func (h *IncomeHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entry ID"))
	}

	var req dto.IncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	income, err := h.ledgerService.UpdateIncome(userID, incomeID, &req)
	if err != nil {
		if err == repositories.ErrIncomeNotFound {
			return SendError(c, errors.LedgerEntryNotFound)
		}
		return SendSystemError(c, err)
	}

	redirectTo := req.RedirectTo
	if redirectTo == "" {
		redirectTo = "/app/dashboard"
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    incomeResponse(income),
		Message: "Income updated",
		Meta:    dto.ActionResponse{Success: true, RedirectTo: redirectTo},
	})
}

// Delete removes an owned income entry
//
// Method: POST /app/income/delete
// Authentication: Required
func (h *IncomeHandler) Delete(c echo.Context) error {
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

	incomeID, err := uuid.Parse(req.ID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid entry ID"))
	}

	deleted, err := h.ledgerService.DeleteIncome(userID, incomeID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ActionResponse{
		Success:    deleted,
		RedirectTo: req.RedirectTo,
	})
}

func incomeResponse(i *models.Income) dto.EntryResponse {
	return dto.EntryResponse{
		ID:         i.ID.String(),
		Type:       models.EntryTypeIncome,
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
