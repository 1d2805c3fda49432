package helper

import (
	"testing"

	"event_manager/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", "not-a-hash"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateAccessToken(model.TokenClaim{UserId: 7, Email: "dara@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["id"])
	assert.Equal(t, "dara@example.com", claims["email"])
	assert.NotNil(t, claims["exp"])
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokenString, err := GenerateAccessToken(model.TokenClaim{UserId: 1, Email: "a@b.c"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	token, err := ParseToken(tokenString)
	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
