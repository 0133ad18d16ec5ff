package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testManager() *Manager {
	return NewManager(TokenConfig{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	mgr := testManager()
	email := "player@example.com"
	user := User{ID: uuid.New(), Email: &email, DisplayName: "Player One", IsPremium: true}

	token, err := mgr.GenerateAccessToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, "Player One", claims.DisplayName)
	assert.True(t, claims.IsPremium)
}

func TestRefreshTokenNotValidAsAccess(t *testing.T) {
	mgr := testManager()
	user := User{ID: uuid.New(), DisplayName: "Player"}

	refresh, err := mgr.GenerateRefreshToken(user)
	assert.NoError(t, err)

	_, err = mgr.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken, "tokens are bound to their secret")

	claims, err := mgr.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestValidateRejectsGarbage(t *testing.T) {
	mgr := testManager()

	_, err := mgr.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	mgr := NewManager(TokenConfig{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     -1 * time.Minute,
	})
	user := User{ID: uuid.New(), DisplayName: "Player"}

	token, err := mgr.GenerateAccessToken(user)
	assert.NoError(t, err)

	_, err = mgr.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
