package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Password rules apply only to locally registered accounts; guest and OAuth
// rows store no hash at all.
const (
	minPasswordLength = 8
	bcryptCost        = 12
)

var (
	// ErrPasswordTooShort rejects passwords under the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrInvalidPassword is returned when a password does not match its hash.
	ErrInvalidPassword = errors.New("invalid password")
)

// HashPassword validates the password length and returns its bcrypt hash.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
