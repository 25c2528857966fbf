package handlers

import (
	"net/http"
	"time"

	"xman-api/internal/dto"
	"xman-api/internal/errors"
	"xman-api/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration, login, and the session cookie lifecycle
type AuthHandler struct {
	authService    services.AuthServiceInterface
	sessionService services.SessionServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, sessionService services.SessionServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionService: sessionService,
	}
}

// Register handles user registration
//
// Method: POST /auth/register
//
// On success the session cookie is set and the client is told where to go
// next; a taken email reports AUTH_006.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, session, err := h.authService.Register(&req)
	if err != nil {
		if err == services.ErrUserAlreadyExists {
			return SendError(c, errors.AuthEmailTaken)
		}
		return SendSystemError(c, err)
	}

	cookie := h.sessionService.NewSessionCookie(session.CookieValue)
	setSessionCookie(c, cookie)

	redirectTo := req.RedirectTo
	if redirectTo == "" {
		redirectTo = "/app/dashboard"
	}

	return c.JSON(http.StatusCreated, dto.SessionResponse{
		UserID:     user.ID.String(),
		Email:      user.Email,
		ExpiresAt:  time.Now().Add(time.Duration(cookie.MaxAge) * time.Second),
		RedirectTo: redirectTo,
	})
}

// Login handles user authentication
//
// Method: POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, session, err := h.authService.Login(&req, getClientIP(c))
	if err != nil {
		if err == services.ErrAccountLocked {
			return SendError(c, errors.AuthAccountLocked)
		}
		if err == services.ErrInvalidCredentials {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	cookie := h.sessionService.NewSessionCookie(session.CookieValue)
	setSessionCookie(c, cookie)

	redirectTo := req.RedirectTo
	if redirectTo == "" {
		redirectTo = "/app/dashboard"
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{
		UserID:     user.ID.String(),
		Email:      user.Email,
		ExpiresAt:  time.Now().Add(time.Duration(cookie.MaxAge) * time.Second),
		RedirectTo: redirectTo,
	})
}

// Callback exchanges a posted token pair for a session cookie
//
// Method: POST /api/auth/callback
//
// Clients that obtained tokens out of band (an OAuth redirect, a mobile
// flow) post them here to have the pair wrapped into the signed cookie.
func (h *AuthHandler) Callback(c echo.Context) error {
	var req dto.CallbackRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, session, err := h.authService.EstablishSession(req.AccessToken, req.RefreshToken)
	if err != nil {
		if err == services.ErrNotAuthenticated {
			return SendError(c, errors.AuthInvalidSession)
		}
		return SendSystemError(c, err)
	}

	cookie := h.sessionService.NewSessionCookie(session.CookieValue)
	setSessionCookie(c, cookie)

	redirectTo := req.RedirectTo
	if redirectTo == "" {
		redirectTo = "/app/dashboard"
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{
		UserID:     user.ID.String(),
		Email:      user.Email,
		ExpiresAt:  time.Now().Add(time.Duration(cookie.MaxAge) * time.Second),
		RedirectTo: redirectTo,
	})
}

// Logout drops the session cookie
//
// Method: POST /auth/logout
//
// Logout always succeeds; there is no server-side session to tear down
// because the cookie itself is the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	setSessionCookie(c, h.sessionService.ClearedSessionCookie())

	return c.JSON(http.StatusOK, dto.ActionResponse{
		Success:    true,
		RedirectTo: "/login",
	})
}

// ForgotPassword issues a password reset token
//
// Method: POST /auth/forgot-password
//
// The response is identical whether or not the email is registered, so the
// endpoint cannot be used to probe for accounts.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if _, err := h.authService.ForgotPassword(req.Email); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "If an account exists for that address, a reset link has been sent",
	})
}

// ResetPassword sets a new password using a reset token
//
// Method: POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		if err == services.ErrInvalidResetToken {
			return SendError(c, errors.AuthInvalidSession, errors.WithMessage("Invalid or expired reset token"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ActionResponse{
		Success:    true,
		RedirectTo: "/login",
	})
}
