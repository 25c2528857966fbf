package services

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"xman-api/internal/config"
	"xman-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid session cookie")
	ErrExpiredSession = errors.New("session cookie is expired")
	ErrEmptySession   = errors.New("empty session cookie")
)

// SessionCookie describes a cookie to be attached to the response. It stays
// transport-agnostic so services never touch echo directly.
type SessionCookie struct {
	Name     string
	Value    string
	Path     string
	MaxAge   int
	HTTPOnly bool
	Secure   bool
	SameSite http.SameSite
}

// HTTPCookie converts the description into a standard http.Cookie
func (sc *SessionCookie) HTTPCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sc.Name,
		Value:    sc.Value,
		Path:     sc.Path,
		MaxAge:   sc.MaxAge,
		HttpOnly: sc.HTTPOnly,
		Secure:   sc.Secure,
		SameSite: sc.SameSite,
	}
}

// SessionService wraps the token pair and user id in a single HS256-signed
// cookie value. Tampering with any part invalidates the whole session.
type SessionService struct {
	cfg    config.SessionConfig
	secure bool
}

// NewSessionService creates a new session cookie codec. secure controls the
// Secure cookie attribute and should be on outside development.
func NewSessionService(cfg *config.SessionConfig, secure bool) SessionServiceInterface {
	return &SessionService{
		cfg:    *cfg,
		secure: secure,
	}
}

// EncodeSession signs a session cookie value carrying the token pair
func (ss *SessionService) EncodeSession(accessToken, refreshToken string, userID uuid.UUID) (string, error) {
	if accessToken == "" || refreshToken == "" {
		return "", errors.New("token pair cannot be empty")
	}
	if userID == uuid.Nil {
		return "", errors.New("user ID cannot be nil")
	}

	now := time.Now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ss.cfg.CookieMaxAge)),
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       userID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ss.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}

	return signed, nil
}

// DecodeSession verifies a session cookie value and returns its claims
func (ss *SessionService) DecodeSession(cookieValue string) (*models.SessionClaims, error) {
	if cookieValue == "" {
		return nil, ErrEmptySession
	}

	token, err := jwt.ParseWithClaims(cookieValue, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ss.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	return claims, nil
}

// NewSessionCookie builds the auth cookie for a signed session value
func (ss *SessionService) NewSessionCookie(value string) *SessionCookie {
	return &SessionCookie{
		Name:     ss.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ss.cfg.CookieMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   ss.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedSessionCookie builds an expired cookie that removes the session
func (ss *SessionService) ClearedSessionCookie() *SessionCookie {
	return &SessionCookie{
		Name:     ss.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   ss.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
