package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"xman-api/internal/dto"
	"xman-api/internal/models"
	"xman-api/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked due to too many failed attempts")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrNotAuthenticated   = errors.New("no valid session")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

const (
	tokenTypeReset     = "reset"
	resetTokenDuration = time.Hour
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	profileRepo     repositories.ProfileRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	sessionService  SessionServiceInterface
	metrics         MetricsRecorderInterface
	resetSecret     string
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	sessionService SessionServiceInterface,
	metrics MetricsRecorderInterface,
	resetSecret string,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		sessionService:  sessionService,
		metrics:         metrics,
		resetSecret:     resetSecret,
		logger:          logger,
	}
}

// Register creates a new user with a blank profile and logs them in
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, *Session, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		s.metrics.RecordAuthEvent("register", "email_taken")
		return nil, nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &models.Profile{
		UserID: user.ID,
		Name:   req.Name,
		Email:  req.Email,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		// Non-critical: onboarding recreates the profile on first login
		s.logger.Error("failed to create profile for new user",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, nil, err
	}

	s.metrics.RecordAuthEvent("register", "success")
	s.logger.Info("user registered", slog.String("user_id", user.ID.String()))

	return user, session, nil
}

// Login authenticates credentials and issues a fresh session
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress string) (*models.User, *Session, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.RecordAuthEvent("login", "user_not_found")
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.IsLocked() {
		s.metrics.RecordAuthEvent("login", "account_locked")
		s.logger.Warn("login attempt on locked account",
			slog.String("user_id", user.ID.String()),
			slog.String("ip", ipAddress))
		return nil, nil, ErrAccountLocked
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		user.IncrementFailedAttempts()
		if err := s.userRepo.UpdateFailedLoginAttempts(user); err != nil {
			s.logger.Error("failed to update login attempts",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()))
		}
		s.metrics.RecordAuthEvent("login", "bad_password")
		return nil, nil, ErrInvalidCredentials
	}

	user.ResetFailedAttempts()
	user.RecordLogin()
	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("failed to record login",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, nil, err
	}

	s.metrics.RecordAuthEvent("login", "success")
	s.logger.Info("user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("ip", ipAddress))

	return user, session, nil
}

// Authenticate verifies a session cookie and loads its user. When the access
// token has expired but the refresh token is still good, a new token pair is
// issued and the returned session carries the re-signed cookie value with
// Refreshed set, so callers can attach it to the response.
func (s *AuthService) Authenticate(cookieValue string) (*models.User, *Session, error) {
	claims, err := s.sessionService.DecodeSession(cookieValue)
	if err != nil {
		return nil, nil, ErrNotAuthenticated
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil, ErrNotAuthenticated
	}

	if _, err := s.tokenService.ValidateAccessToken(claims.AccessToken); err == nil {
		user, err := s.userRepo.GetByID(userID)
		if err != nil {
			return nil, nil, ErrNotAuthenticated
		}
		return user, &Session{
			UserID:       userID,
			AccessToken:  claims.AccessToken,
			RefreshToken: claims.RefreshToken,
			CookieValue:  cookieValue,
		}, nil
	} else if !errors.Is(err, ErrExpiredToken) {
		s.metrics.RecordAuthEvent("authenticate", "invalid_token")
		return nil, nil, ErrNotAuthenticated
	}

	// Access token expired: one refresh attempt, then give up
	refreshClaims, err := s.tokenService.ValidateRefreshToken(claims.RefreshToken)
	if err != nil {
		s.metrics.RecordAuthEvent("authenticate", "refresh_failed")
		return nil, nil, ErrNotAuthenticated
	}

	if refreshClaims.UserID != claims.UserID {
		s.metrics.RecordAuthEvent("authenticate", "user_mismatch")
		return nil, nil, ErrNotAuthenticated
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, ErrNotAuthenticated
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, nil, err
	}
	session.Refreshed = true

	s.metrics.RecordAuthEvent("authenticate", "refreshed")
	s.logger.Info("session refreshed", slog.String("user_id", user.ID.String()))

	return user, session, nil
}

// ForgotPassword issues a short-lived reset token for the account. The token
// is returned to the caller for delivery; a missing account yields the same
// outward behavior as a present one.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.RecordAuthEvent("forgot_password", "user_not_found")
			return "", nil
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	now := time.Now()
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(resetTokenDuration)),
		},
		UserID:    user.ID.String(),
		TokenType: tokenTypeReset,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.resetSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}

	s.metrics.RecordAuthEvent("forgot_password", "issued")
	return signed, nil
}

// ResetPassword validates a reset token and replaces the password
func (s *AuthService) ResetPassword(tokenString, newPassword string) error {
	token, err := jwt.ParseWithClaims(tokenString, &models.CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.resetSecret), nil
	})
	if err != nil {
		return ErrInvalidResetToken
	}

	claims, ok := token.Claims.(*models.CustomClaims)
	if !ok || !token.Valid || claims.TokenType != tokenTypeReset {
		return ErrInvalidResetToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return ErrInvalidResetToken
	}

	hashedPassword, err := s.passwordService.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(userID, hashedPassword); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.metrics.RecordAuthEvent("reset_password", "success")
	s.logger.Info("password reset", slog.String("user_id", userID.String()))

	return nil
}

// EstablishSession exchanges an externally delivered token pair for a session
// cookie. Used by the auth callback route, where the client already holds a
// valid pair and only needs it wrapped into the signed cookie.
func (s *AuthService) EstablishSession(accessToken, refreshToken string) (*models.User, *Session, error) {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		s.metrics.RecordAuthEvent("callback", "invalid_access_token")
		return nil, nil, ErrNotAuthenticated
	}

	refreshClaims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil || refreshClaims.UserID != claims.UserID {
		s.metrics.RecordAuthEvent("callback", "invalid_refresh_token")
		return nil, nil, ErrNotAuthenticated
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil, ErrNotAuthenticated
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, ErrNotAuthenticated
	}

	cookieValue, err := s.sessionService.EncodeSession(accessToken, refreshToken, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode session: %w", err)
	}

	s.metrics.RecordAuthEvent("callback", "success")
	return user, &Session{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CookieValue:  cookieValue,
	}, nil
}

func (s *AuthService) issueSession(user *models.User) (*Session, error) {
	accessToken, _, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	cookieValue, err := s.sessionService.EncodeSession(accessToken, refreshToken, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	return &Session{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CookieValue:  cookieValue,
	}, nil
}
