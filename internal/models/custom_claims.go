package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims are the claims carried by RS256 access and refresh tokens.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}

// SessionClaims is the payload of the signed session cookie: the token pair
// plus the user id, wrapped in an HS256 JWT so tampering invalidates the
// cookie as a whole.
type SessionClaims struct {
	jwt.RegisteredClaims
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}
