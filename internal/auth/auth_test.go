package auth_test

import (
	"testing"

	"schemecheck_backend/internal/auth"
	"schemecheck_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, "test-secret")

	token, err := auth.GenerateToken("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, "first-secret")
	token, err := auth.GenerateToken("user-42")
	require.NoError(t, err)

	setTestConfig(t, "second-secret")
	_, err = auth.ParseToken(token)

	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, "test-secret")

	_, err := auth.ParseToken("not.a.token")

	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, auth.CheckPasswordHash("secret123", hash))
	assert.False(t, auth.CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, auth.ValidatePassword("secret"))
	assert.Error(t, auth.ValidatePassword("12345"))
	assert.Error(t, auth.ValidatePassword(""))
}
