package handlers

import (
	"net/http"

	"xman-api/internal/dto"
	"xman-api/internal/errors"
	"xman-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles the category picker endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns the categories visible to the user: shared defaults first,
// then the user's own
//
// Method: GET /app/categories
// Authentication: Required
//
// Query parameters:
//   - categories: all | expense | income (default all)
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	kind := c.QueryParam("categories")
	if kind == "" {
		kind = services.CategoryKindAll
	}

	categories, err := h.categoryService.ListCategories(userID, kind)
	if err != nil {
		if err == services.ErrInvalidCategoryKind {
			return SendError(c, errors.CategoryInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: categoryResponses(categories),
	})
}

// Create adds a user-owned category to one side of the partition
//
// Method: POST /app/categories/new
// Authentication: Required
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(userID, req.Name, *req.Expense)
	if err != nil {
		if err == services.ErrCategoryNameTaken {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.CategoryResponse{
			ID:      category.ID.String(),
			Name:    category.Name,
			Expense: category.Expense,
			Default: category.IsDefault(),
		},
		Message: "Category added",
	})
}

// Delete removes a user-owned category; shared defaults are refused
//
// Method: POST /app/categories/delete
// Authentication: Required
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.DeleteCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.ID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	deleted, err := h.categoryService.DeleteCategory(userID, categoryID)
	if err != nil {
		if err == services.ErrCategoryNotDeletable {
			return SendError(c, errors.CategoryNotDeletable)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ActionResponse{Success: deleted})
}
