package services

import (
	"testing"
	"time"

	"xman-api/internal/config"
	"xman-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) TokenServiceInterface {
	t.Helper()

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)

	return NewTokenService(&config.JWTConfig{
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 30 * 24 * time.Hour,
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "xman-api",
	})
}

func TestTokenService_AccessTokenRoundTrip(t *testing.T) {
	ts := newTestTokenService(t)
	user := &models.User{ID: uuid.New(), Email: "user@example.com"}

	token, expiresAt, err := ts.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ts.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestTokenService_RefreshTokenRoundTrip(t *testing.T) {
	ts := newTestTokenService(t)
	userID := uuid.New()

	token, _, err := ts.GenerateRefreshToken(userID)
	require.NoError(t, err)

	claims, err := ts.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestTokenService_TypeMismatchRejected(t *testing.T) {
	ts := newTestTokenService(t)
	user := &models.User{ID: uuid.New(), Email: "user@example.com"}

	accessToken, _, err := ts.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = ts.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestTokenService_WrongKeyRejected(t *testing.T) {
	signer := newTestTokenService(t)
	verifier := newTestTokenService(t)
	user := &models.User{ID: uuid.New(), Email: "user@example.com"}

	token, _, err := signer.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_EmptyToken(t *testing.T) {
	ts := newTestTokenService(t)

	_, err := ts.ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestTokenService_NilUser(t *testing.T) {
	ts := newTestTokenService(t)

	_, _, err := ts.GenerateAccessToken(nil)
	assert.Error(t, err)

	_, _, err = ts.GenerateRefreshToken(uuid.Nil)
	assert.Error(t, err)
}
