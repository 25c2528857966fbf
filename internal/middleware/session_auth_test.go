package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"xman-api/internal/models"
	"xman-api/internal/services"
	"xman-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const testCookieName = "xm_session"

func TestSessionAuthMiddleware(t *testing.T) {
	suite.Run(t, new(SessionAuthMiddlewareSuite))
}

type SessionAuthMiddlewareSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	authService    *service_mocks.MockAuthServiceInterface
	sessionService *service_mocks.MockSessionServiceInterface
	e              *echo.Echo
}

func (s *SessionAuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.sessionService = service_mocks.NewMockSessionServiceInterface(s.ctrl)
	s.e = echo.New()
}

func (s *SessionAuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionAuthMiddlewareSuite) newRequest(cookieValue string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/app/dashboard/2024/3", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func clearedCookie() *services.SessionCookie {
	return &services.SessionCookie{Name: testCookieName, Value: "", Path: "/", MaxAge: -1}
}

func (s *SessionAuthMiddlewareSuite) TestRequireSession_ValidCookie() {
	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	session := &services.Session{UserID: user.ID, CookieValue: "signed-session"}

	s.authService.EXPECT().Authenticate("signed-session").Return(user, session, nil)

	handler := RequireSession(testCookieName, s.authService, s.sessionService)(func(c echo.Context) error {
		s.Equal(user.ID, c.Get("user_id"))
		s.Equal(user.Email, c.Get("user_email"))
		return c.NoContent(http.StatusOK)
	})

	c, rec := s.newRequest("signed-session")
	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Header().Get("Set-Cookie"))
}

func (s *SessionAuthMiddlewareSuite) TestRequireSession_MissingCookie() {
	handler := RequireSession(testCookieName, s.authService, s.sessionService)(func(c echo.Context) error {
		s.Fail("handler should not run")
		return nil
	})

	c, rec := s.newRequest("")
	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *SessionAuthMiddlewareSuite) TestRequireSession_DeadSessionClearsCookie() {
	s.authService.EXPECT().Authenticate("stale").Return(nil, nil, errors.New("no valid session"))
	s.sessionService.EXPECT().ClearedSessionCookie().Return(clearedCookie())

	handler := RequireSession(testCookieName, s.authService, s.sessionService)(func(c echo.Context) error {
		s.Fail("handler should not run")
		return nil
	})

	c, rec := s.newRequest("stale")
	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
	s.Contains(rec.Header().Get("Set-Cookie"), testCookieName+"=;")
}

func (s *SessionAuthMiddlewareSuite) TestRequireSession_RefreshedSessionSetsNewCookie() {
	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	session := &services.Session{UserID: user.ID, Refreshed: true, CookieValue: "re-signed"}

	s.authService.EXPECT().Authenticate("old-cookie").Return(user, session, nil)
	s.sessionService.EXPECT().NewSessionCookie("re-signed").Return(&services.SessionCookie{
		Name:     testCookieName,
		Value:    "re-signed",
		Path:     "/",
		MaxAge:   3600,
		HTTPOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	handler := RequireSession(testCookieName, s.authService, s.sessionService)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c, rec := s.newRequest("old-cookie")
	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Set-Cookie"), testCookieName+"=re-signed")
}
