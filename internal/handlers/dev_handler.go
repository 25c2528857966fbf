package handlers

import (
	"net/http"

	"xman-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seedService services.SeedServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seedService services.SeedServiceInterface) *DevHandler {
	return &DevHandler{seedService: seedService}
}

// SeedDemoData populates the demo account with fake ledger history
//
// Method: POST /api/dev/seed
// Environment: Development only
//
// Query parameters:
//   - months: months of history to generate (default 3, max 24)
//
// Seeding is idempotent; a second call finds the demo account and leaves
// existing rows alone.
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	months := getIntParam(c, "months", 3)
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	user, err := h.seedService.SeedDemoData(c.Request().Context(), months)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "demo data ready",
		"demo_user_id":  user.ID,
		"demo_email":    user.Email,
		"months_seeded": months,
	})
}
