package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensRoundtrip(t *testing.T) {
	tokens := NewTokens("test-secret")

	tok, err := tokens.Sign("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	uid, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestTokensWrongSecret(t *testing.T) {
	tok, err := NewTokens("secret-a").Sign("user-123")
	require.NoError(t, err)

	_, err = NewTokens("secret-b").Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokensMalformed(t *testing.T) {
	tokens := NewTokens("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := tokens.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

func TestTokensExpired(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"sub": "user-123",
		"iat": time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp": time.Now().Add(-24 * time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokens(secret).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokensWrongMethod(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokens(secret).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokensMissingSubject(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokens(secret).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
