package services

import (
	"net/http"
	"testing"
	"time"

	"xman-api/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(secret string) SessionServiceInterface {
	return NewSessionService(&config.SessionConfig{
		Secret:       secret,
		CookieName:   "xm_session",
		ThemeCookie:  "xm_theme",
		CookieMaxAge: 30 * 24 * time.Hour,
	}, false)
}

func TestSessionService_RoundTrip(t *testing.T) {
	ss := newTestSessionService("test-secret")
	userID := uuid.New()

	cookieValue, err := ss.EncodeSession("access-token", "refresh-token", userID)
	require.NoError(t, err)
	require.NotEmpty(t, cookieValue)

	claims, err := ss.DecodeSession(cookieValue)
	require.NoError(t, err)
	assert.Equal(t, "access-token", claims.AccessToken)
	assert.Equal(t, "refresh-token", claims.RefreshToken)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestSessionService_TamperedCookieRejected(t *testing.T) {
	ss := newTestSessionService("test-secret")

	cookieValue, err := ss.EncodeSession("access-token", "refresh-token", uuid.New())
	require.NoError(t, err)

	_, err = ss.DecodeSession(cookieValue + "x")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_WrongSecretRejected(t *testing.T) {
	signer := newTestSessionService("secret-a")
	verifier := newTestSessionService("secret-b")

	cookieValue, err := signer.EncodeSession("access-token", "refresh-token", uuid.New())
	require.NoError(t, err)

	_, err = verifier.DecodeSession(cookieValue)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_EmptyCookie(t *testing.T) {
	ss := newTestSessionService("test-secret")

	_, err := ss.DecodeSession("")
	assert.ErrorIs(t, err, ErrEmptySession)
}

func TestSessionService_EncodeRejectsMissingParts(t *testing.T) {
	ss := newTestSessionService("test-secret")

	_, err := ss.EncodeSession("", "refresh-token", uuid.New())
	assert.Error(t, err)

	_, err = ss.EncodeSession("access-token", "refresh-token", uuid.Nil)
	assert.Error(t, err)
}

func TestSessionService_CookieAttributes(t *testing.T) {
	ss := newTestSessionService("test-secret")

	cookie := ss.NewSessionCookie("value")
	assert.Equal(t, "xm_session", cookie.Name)
	assert.Equal(t, "value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HTTPOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	cleared := ss.ClearedSessionCookie()
	assert.Equal(t, "xm_session", cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
