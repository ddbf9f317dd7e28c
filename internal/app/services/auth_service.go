package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/app/models/dto"
	"github.com/selin/acadcore/internal/app/repositories"
	"github.com/selin/acadcore/internal/pkg/apperrors"
	"github.com/selin/acadcore/internal/pkg/auth"
	"github.com/selin/acadcore/internal/pkg/validation"
)

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// TokenStore persists refresh tokens.
type TokenStore interface {
	Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (*repositories.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

// AuthService handles registration, login and token refresh.
type AuthService struct {
	users      UserStore
	tokens     TokenStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, tokens TokenStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateEmail validates an email address
func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "email cannot be empty")
	}

	if !validation.IsValidEmail(email) {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "password cannot be empty")
	}

	if !validation.IsValidPassword(password) {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password must contain at least one letter")
	}
	if !hasDigit {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password must contain at least one digit")
	}

	return nil
}

// Register creates a new student or teacher account and returns an
// initial token pair. Admin accounts cannot be registered through here.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	if !validation.IsValidName(req.FirstName) || !validation.IsValidName(req.LastName) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "first and last name must be between 2 and 100 characters")
	}

	role := models.RoleType(req.RoleType)
	if role != models.RoleStudent && role != models.RoleTeacher {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "role must be STUDENT or TEACHER")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		RoleType:  role,
		IsActive:  true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userId", user.ID).
		Str("roleType", string(user.RoleType)).
		Msg("User registered")

	return s.generateAuthResponse(ctx, user)
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	if req.Password == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "password cannot be empty")
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateAuthResponse(ctx, user)
}

// RefreshToken rotates a refresh token: the old token is revoked and a
// fresh pair is issued.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	stored, err := s.tokens.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenInvalid
	}

	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.tokens.Revoke(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// Revoke before reissue so a leaked token cannot be replayed.
	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking refresh token: %w", err)
	}

	return s.generateAuthResponse(ctx, user)
}

// generateAuthResponse issues a token pair and persists the refresh token.
func (s *AuthService) generateAuthResponse(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokens.Store(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}
