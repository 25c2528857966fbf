package services

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"xman-api/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	// DefaultTheme applies when no cookie is present or its value is junk
	DefaultTheme = ThemeDark
)

// ThemeService resolves and persists the UI theme preference. The preference
// rides in its own signed cookie, same codec as the session, so a tampered
// value falls back to the default instead of leaking arbitrary strings into
// the page.
type ThemeService struct {
	cfg    config.SessionConfig
	secure bool
}

// NewThemeService creates a new theme service
func NewThemeService(cfg *config.SessionConfig, secure bool) ThemeServiceInterface {
	return &ThemeService{
		cfg:    *cfg,
		secure: secure,
	}
}

// ResolveTheme verifies a signed theme cookie value and returns the theme it
// carries, falling back to the default on a missing, tampered, or unknown
// value
func (ts *ThemeService) ResolveTheme(cookieValue string) string {
	if cookieValue == "" {
		return DefaultTheme
	}

	token, err := jwt.ParseWithClaims(cookieValue, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return DefaultTheme
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return DefaultTheme
	}

	return normalizeTheme(claims.Subject)
}

// NewThemeCookie builds the theme preference cookie around a signed value
func (ts *ThemeService) NewThemeCookie(theme string) *SessionCookie {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   normalizeTheme(theme),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.cfg.CookieMaxAge)),
	}

	// HS256 over a byte-slice key cannot fail to sign
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.cfg.Secret))

	return &SessionCookie{
		Name:     ts.cfg.ThemeCookie,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(ts.cfg.CookieMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   ts.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// normalizeTheme maps free-form input to a valid theme name
func normalizeTheme(v string) string {
	switch strings.ToLower(v) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	case ThemeSystem:
		return ThemeSystem
	default:
		return DefaultTheme
	}
}
