package handlers

import (
	"net/http"

	"xman-api/internal/dto"
	"xman-api/internal/errors"
	"xman-api/internal/models"
	"xman-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PresetHandler handles quick-add templates for recurring entries
type PresetHandler struct {
	presetService services.PresetServiceInterface
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(presetService services.PresetServiceInterface) *PresetHandler {
	return &PresetHandler{presetService: presetService}
}

// List returns the user's saved presets, newest first
//
// Method: GET /app/presets
// Authentication: Required
func (h *PresetHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	presets, err := h.presetService.ListPresets(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	out := make([]dto.PresetResponse, 0, len(presets))
	for _, p := range presets {
		out = append(out, presetResponse(&p))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: out})
}

// Create saves a new quick-add template
//
// Method: POST /app/presets/new
// Authentication: Required
func (h *PresetHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.CreatePresetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	preset, err := h.presetService.CreatePreset(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    presetResponse(preset),
		Message: "Preset saved",
	})
}

// Delete removes a saved template
//
// Method: POST /app/presets/delete
// Authentication: Required
func (h *PresetHandler) Delete(c echo.Context) error {
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

	presetID, err := uuid.Parse(req.ID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid preset ID"))
	}

	deleted, err := h.presetService.DeletePreset(userID, presetID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ActionResponse{Success: deleted})
}

func presetResponse(p *models.Preset) dto.PresetResponse {
	return dto.PresetResponse{
		ID:         p.ID.String(),
		Title:      p.Title,
		Amount:     p.Amount,
		Categories: models.SplitCategoryTags(p.Categories),
		Expense:    p.Expense,
	}
}
