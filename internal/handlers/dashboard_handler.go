package handlers

import (
	"net/http"

	"xman-api/internal/dto"
	"xman-api/internal/errors"
	"xman-api/internal/models"
	"xman-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the merged monthly overview
type DashboardHandler struct {
	overviewService services.MonthOverviewServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(overviewService services.MonthOverviewServiceInterface) *DashboardHandler {
	return &DashboardHandler{overviewService: overviewService}
}

// GetMonthOverview builds the dashboard for one (month, year) bucket
//
// Method: GET /app/dashboard/:year/:month
// Authentication: Required
//
// Query parameters:
//   - tags: repeatable category-name filter; "Seva" selects flagged income
//
// Totals always cover the whole month; the tag filter narrows only the
// visible entry list.
func (h *DashboardHandler) GetMonthOverview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	month := c.Param("month")
	year := c.Param("year")
	if getIntParam(c, "month", 0) < 1 || getIntParam(c, "month", 0) > 12 {
		return SendError(c, errors.ValidationInvalidMonth)
	}
	if len(year) != 4 || getIntParam(c, "year", 0) == 0 {
		return SendError(c, errors.LedgerInvalidPeriod)
	}

	tags := c.QueryParams()["tags"]

	overview, err := h.overviewService.GetMonthOverview(c.Request().Context(), userID, month, year, tags)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, buildOverviewResponse(month, year, tags, overview))
}

func buildOverviewResponse(month, year string, tags []string, overview *models.MonthOverview) dto.MonthOverviewResponse {
	if tags == nil {
		tags = []string{}
	}

	return dto.MonthOverviewResponse{
		Month:           month,
		Year:            year,
		Entries:         entryResponses(overview.Entries),
		FilteredEntries: entryResponses(overview.FilteredEntries),
		TotalExpense:    overview.TotalExpense.String(),
		TotalIncome:     overview.TotalIncome.String(),
		TotalTenPercent: overview.TotalTenPercent.String(),
		Balance:         overview.Balance().String(),
		Categories:      categoryResponses(overview.Categories),
		Tags:            tags,
	}
}

func entryResponses(entries []models.LedgerEntry) []dto.EntryResponse {
	out := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.EntryResponse{
			ID:         e.ID.String(),
			Type:       e.Type,
			Title:      e.Title,
			Amount:     e.Amount,
			Day:        e.Day,
			Month:      e.Month,
			Year:       e.Year,
			Categories: e.Categories,
			Seva:       e.Seva,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}

func categoryResponses(categories []models.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.CategoryResponse{
			ID:      cat.ID.String(),
			Name:    cat.Name,
			Expense: cat.Expense,
			Default: cat.IsDefault(),
		})
	}
	return out
}
