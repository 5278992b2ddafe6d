package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/security"
)

const testSecret = "test-secret-0123456789abcdef0123456789abcdef"

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 60*24*7)

	token, err := tm.GenerateAccessToken(42, "alice@test.edu", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "alice@test.edu", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, security.TokenTypeAccess, claims.Type)
}

func TestTokenManager_RefreshTokenType(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 60*24*7)

	token, err := tm.GenerateRefreshToken(42, "alice@test.edu")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, security.TokenTypeRefresh, claims.Type)
	assert.Empty(t, claims.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 60)
	other := security.NewTokenManager("another-secret-0123456789abcdef012345678", 60, 60)

	token, err := tm.GenerateAccessToken(42, "alice@test.edu", domain.RoleStudent)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 0, 0)

	token, err := tm.GenerateAccessToken(42, "alice@test.edu", domain.RoleStudent)
	require.NoError(t, err)

	// Zero expiry minutes means the token is already expired.
	time.Sleep(10 * time.Millisecond)
	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 60, 60)
	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
