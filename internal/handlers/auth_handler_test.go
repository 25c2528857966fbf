package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"xman-api/internal/dto"
	"xman-api/internal/models"
	"xman-api/internal/services"
	"xman-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	authService    *service_mocks.MockAuthServiceInterface
	sessionService *service_mocks.MockSessionServiceInterface
	handler        *AuthHandler
	e              *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.sessionService = service_mocks.NewMockSessionServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService, s.sessionService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) postJSON(path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *AuthHandlerSuite) sessionCookie(value string) *services.SessionCookie {
	return &services.SessionCookie{
		Name:     "xm_session",
		Value:    value,
		Path:     "/",
		MaxAge:   3600,
		HTTPOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *AuthHandlerSuite) TestRegister_Success() {
	user := &models.User{ID: uuid.New(), Email: "new@example.com"}
	session := &services.Session{UserID: user.ID, CookieValue: "signed"}

	s.authService.EXPECT().Register(gomock.Any()).Return(user, session, nil)
	s.sessionService.EXPECT().NewSessionCookie("signed").Return(s.sessionCookie("signed"))

	c, rec := s.postJSON("/auth/register", map[string]string{
		"email":    "new@example.com",
		"password": "securepass",
		"name":     "New User",
	})

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Header().Get("Set-Cookie"), "xm_session=signed")

	var resp dto.SessionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(user.ID.String(), resp.UserID)
	s.Equal("/app/dashboard", resp.RedirectTo)
}

func (s *AuthHandlerSuite) TestRegister_EmailTaken() {
	s.authService.EXPECT().Register(gomock.Any()).Return(nil, nil, services.ErrUserAlreadyExists)

	c, rec := s.postJSON("/auth/register", map[string]string{
		"email":    "taken@example.com",
		"password": "securepass",
		"name":     "Someone",
	})

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("AUTH_006", errorResp.Error.Code)
}

func (s *AuthHandlerSuite) TestRegister_ShortPasswordFailsValidation() {
	c, _ := s.postJSON("/auth/register", map[string]string{
		"email":    "new@example.com",
		"password": "short",
		"name":     "New User",
	})

	err := s.handler.Register(c)
	s.Error(err)
}

func (s *AuthHandlerSuite) TestLogin_Success() {
	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	session := &services.Session{UserID: user.ID, CookieValue: "signed"}

	s.authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user, session, nil)
	s.sessionService.EXPECT().NewSessionCookie("signed").Return(s.sessionCookie("signed"))

	c, rec := s.postJSON("/auth/login", map[string]string{
		"email":      "user@example.com",
		"password":   "securepass",
		"redirectTo": "/app/dashboard/2024/3",
	})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SessionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("/app/dashboard/2024/3", resp.RedirectTo)
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	s.authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, nil, services.ErrInvalidCredentials)

	c, rec := s.postJSON("/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "wrongpass",
	})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("AUTH_001", errorResp.Error.Code)
}

func (s *AuthHandlerSuite) TestLogin_LockedAccount() {
	s.authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, nil, services.ErrAccountLocked)

	c, rec := s.postJSON("/auth/login", map[string]string{
		"email":    "locked@example.com",
		"password": "securepass",
	})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AuthHandlerSuite) TestLogin_UnsafeRedirectRejected() {
	c, _ := s.postJSON("/auth/login", map[string]string{
		"email":      "user@example.com",
		"password":   "securepass",
		"redirectTo": "//evil.example.com",
	})

	err := s.handler.Login(c)
	s.Error(err)
}

func (s *AuthHandlerSuite) TestCallback_Success() {
	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	session := &services.Session{UserID: user.ID, CookieValue: "signed"}

	s.authService.EXPECT().EstablishSession("access-tok", "refresh-tok").Return(user, session, nil)
	s.sessionService.EXPECT().NewSessionCookie("signed").Return(s.sessionCookie("signed"))

	c, rec := s.postJSON("/api/auth/callback", map[string]string{
		"access_token":  "access-tok",
		"refresh_token": "refresh-tok",
	})

	s.NoError(s.handler.Callback(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Set-Cookie"), "xm_session=signed")

	var resp dto.SessionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(user.ID.String(), resp.UserID)
	s.Equal("/app/dashboard", resp.RedirectTo)
}

func (s *AuthHandlerSuite) TestCallback_BadTokens() {
	s.authService.EXPECT().EstablishSession("bogus", "bogus").Return(nil, nil, services.ErrNotAuthenticated)

	c, rec := s.postJSON("/api/auth/callback", map[string]string{
		"access_token":  "bogus",
		"refresh_token": "bogus",
	})

	s.NoError(s.handler.Callback(c))
	s.Equal(http.StatusUnauthorized, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("AUTH_004", errorResp.Error.Code)
}

func (s *AuthHandlerSuite) TestCallback_MissingTokensFailValidation() {
	c, _ := s.postJSON("/api/auth/callback", map[string]string{
		"access_token": "only-one",
	})

	err := s.handler.Callback(c)
	s.Error(err)
}

func (s *AuthHandlerSuite) TestLogout_ClearsCookie() {
	s.sessionService.EXPECT().ClearedSessionCookie().Return(&services.SessionCookie{
		Name: "xm_session", Value: "", Path: "/", MaxAge: -1,
	})

	c, rec := s.postJSON("/auth/logout", nil)

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Set-Cookie"), "xm_session=;")

	var resp dto.ActionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal("/login", resp.RedirectTo)
}

func (s *AuthHandlerSuite) TestForgotPassword_AlwaysGeneric() {
	s.authService.EXPECT().ForgotPassword("ghost@example.com").Return("", nil)

	c, rec := s.postJSON("/auth/forgot-password", map[string]string{
		"email": "ghost@example.com",
	})

	s.NoError(s.handler.ForgotPassword(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "If an account exists")
}

func (s *AuthHandlerSuite) TestResetPassword_BadToken() {
	s.authService.EXPECT().ResetPassword("garbage", "newsecurepass").Return(services.ErrInvalidResetToken)

	c, rec := s.postJSON("/auth/reset-password", map[string]string{
		"token":    "garbage",
		"password": "newsecurepass",
	})

	s.NoError(s.handler.ResetPassword(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
