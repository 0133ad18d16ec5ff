package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/codelingo/backend/internal/auth/jwt"
	"github.com/codelingo/backend/internal/db/repository"
)

var (
	// ErrEmailTaken rejects registration with a known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for any login failure; it never says
	// which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles authentication and account management.
type Service struct {
	userRepo *repository.UserRepository
	tokenMgr *jwt.Manager
	logger   zerolog.Logger
}

// NewService creates an authentication service.
func NewService(userRepo *repository.UserRepository, tokenCfg jwt.TokenConfig, logger zerolog.Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokenMgr: jwt.NewManager(tokenCfg),
		logger:   logger,
	}
}

// Register creates a new account.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, *TokenPair, error) {
	if req.Email == "" {
		return nil, nil, fmt.Errorf("email required")
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("check email: %w", err)
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Email
	}

	dbUser, err := s.userRepo.Create(ctx, &req.Email, &passwordHash, displayName)
	if err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	user := fromRow(dbUser)
	tokens, err := s.generateTokenPair(*user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate tokens: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("email", req.Email).Msg("user registered")
	return user, tokens, nil
}

// RegisterGuest creates an anonymous account with no credentials. Guests
// receive a normal token pair and play with full progress tracking.
func (s *Service) RegisterGuest(ctx context.Context, displayName string) (*User, *TokenPair, error) {
	if displayName == "" {
		displayName = "Guest-" + uuid.NewString()[:8]
	}

	dbUser, err := s.userRepo.Create(ctx, nil, nil, displayName)
	if err != nil {
		return nil, nil, fmt.Errorf("create guest: %w", err)
	}

	user := fromRow(dbUser)
	tokens, err := s.generateTokenPair(*user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate tokens: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("guest registered")
	return user, tokens, nil
}

// Login authenticates a user with email/password.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, *TokenPair, error) {
	dbUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if dbUser.PasswordHash == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if err := VerifyPassword(*dbUser.PasswordHash, req.Password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	_ = s.userRepo.UpdateLogin(ctx, dbUser.ID)

	user := fromRow(dbUser)
	tokens, err := s.generateTokenPair(*user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate tokens: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")
	return user, tokens, nil
}

// RefreshToken generates a new token pair from a refresh token.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokenMgr.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	// Re-fetch so a revoked or upgraded account gets fresh claims.
	dbUser, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	return s.generateTokenPair(*fromRow(dbUser))
}

// ValidateToken validates an access token and returns user claims.
func (s *Service) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return s.tokenMgr.ValidateAccessToken(tokenString)
}

// GetUser fetches an account by id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	dbUser, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromRow(dbUser), nil
}

func (s *Service) generateTokenPair(user User) (*TokenPair, error) {
	jwtUser := jwt.User{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsPremium:   user.IsPremium,
	}

	accessToken, err := s.tokenMgr.GenerateAccessToken(jwtUser)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokenMgr.GenerateRefreshToken(jwtUser)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(1 * 3600), // 1 hour in seconds
	}, nil
}

func fromRow(u repository.User) *User {
	return &User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		IsPremium:   u.IsPremium,
	}
}
