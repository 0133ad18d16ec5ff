package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account.
type User struct {
	ID          uuid.UUID
	Email       *string
	DisplayName string
	IsPremium   bool
}

// TokenPair holds access and refresh tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RegisterRequest for email/password registration.
type RegisterRequest struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginRequest for email/password authentication.
type LoginRequest struct {
	Email    string
	Password string
}

// OAuthProvider constants.
const (
	OAuthProviderGoogle = "google"
)

// TokenConfig holds JWT signing configuration.
type TokenConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration // default: 1 hour
	RefreshTTL    time.Duration // default: 7 days
	Issuer        string
}
