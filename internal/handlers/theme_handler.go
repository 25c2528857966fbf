package handlers

import (
	"net/http"

	"xman-api/internal/dto"
	"xman-api/internal/errors"
	"xman-api/internal/services"

	"github.com/labstack/echo/v4"
)

// ThemeHandler persists the UI theme preference in a signed cookie; clients
// read the active theme back through GET /api/theme
type ThemeHandler struct {
	themeService services.ThemeServiceInterface
	cookieName   string
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(themeService services.ThemeServiceInterface, cookieName string) *ThemeHandler {
	return &ThemeHandler{
		themeService: themeService,
		cookieName:   cookieName,
	}
}

// Get resolves the active theme from the cookie
//
// Method: GET /api/theme
func (h *ThemeHandler) Get(c echo.Context) error {
	cookieValue := ""
	if cookie, err := c.Cookie(h.cookieName); err == nil {
		cookieValue = cookie.Value
	}

	return c.JSON(http.StatusOK, dto.ThemeResponse{
		Theme: h.themeService.ResolveTheme(cookieValue),
	})
}

// Set stores the theme preference
//
// Method: POST /api/set-theme
func (h *ThemeHandler) Set(c echo.Context) error {
	var req dto.SetThemeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	cookie := h.themeService.NewThemeCookie(req.Theme)
	setSessionCookie(c, cookie)

	return c.JSON(http.StatusOK, dto.ThemeResponse{
		Theme: h.themeService.ResolveTheme(cookie.Value),
	})
}
