package services

import (
	"testing"
	"time"

	"xman-api/internal/config"

	"github.com/stretchr/testify/assert"
)

func newTestThemeService() ThemeServiceInterface {
	return NewThemeService(&config.SessionConfig{
		Secret:       "test-theme-secret",
		CookieName:   "xm_session",
		ThemeCookie:  "xm_theme",
		CookieMaxAge: 30 * 24 * time.Hour,
	}, false)
}

func TestThemeService_SignedRoundTrip(t *testing.T) {
	ts := newTestThemeService()

	for _, theme := range []string{ThemeLight, ThemeDark, ThemeSystem} {
		cookie := ts.NewThemeCookie(theme)
		assert.Equal(t, theme, ts.ResolveTheme(cookie.Value))
	}

	// Case-insensitive input normalizes before signing
	cookie := ts.NewThemeCookie("SYSTEM")
	assert.Equal(t, ThemeSystem, ts.ResolveTheme(cookie.Value))
}

func TestThemeService_ResolveTheme_RejectsUnsignedValues(t *testing.T) {
	ts := newTestThemeService()

	// A bare theme name without a signature is not trusted
	assert.Equal(t, DefaultTheme, ts.ResolveTheme("light"))
	assert.Equal(t, DefaultTheme, ts.ResolveTheme(""))
	assert.Equal(t, DefaultTheme, ts.ResolveTheme("neon"))
}

func TestThemeService_ResolveTheme_RejectsForeignSignature(t *testing.T) {
	ts := newTestThemeService()
	other := NewThemeService(&config.SessionConfig{
		Secret:       "a-different-secret",
		ThemeCookie:  "xm_theme",
		CookieMaxAge: time.Hour,
	}, false)

	forged := other.NewThemeCookie(ThemeLight)
	assert.Equal(t, DefaultTheme, ts.ResolveTheme(forged.Value))
}

func TestThemeService_NewThemeCookie(t *testing.T) {
	ts := newTestThemeService()

	cookie := ts.NewThemeCookie("light")
	assert.Equal(t, "xm_theme", cookie.Name)
	assert.NotEqual(t, ThemeLight, cookie.Value)
	assert.True(t, cookie.HTTPOnly)

	junk := ts.NewThemeCookie("neon")
	assert.Equal(t, DefaultTheme, ts.ResolveTheme(junk.Value))
}
