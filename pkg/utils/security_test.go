package utils

import (
	"testing"

	"byfort-go/internal/config"

	"github.com/stretchr/testify/require"
)

func setTestConfig(expireHours int) {
	config.Set(&config.Config{
		App: config.AppConfig{Name: "byfort-test"},
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: expireHours},
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	require.True(t, VerifyPassword("password123", hash))
	require.False(t, VerifyPassword("wrong", hash))
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(1)

	token, err := GenerateToken(42, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "byfort-test", claims.Issuer)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setTestConfig(1)

	_, err := ParseToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	setTestConfig(-1)

	token, err := GenerateToken(42, "alice@example.com")
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(1)
	token, err := GenerateToken(42, "alice@example.com")
	require.NoError(t, err)

	config.Set(&config.Config{
		App: config.AppConfig{Name: "byfort-test"},
		JWT: config.JWTConfig{Secret: "another-secret", ExpireHours: 1},
	})

	_, err = ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
