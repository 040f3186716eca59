package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	signingKey := []byte("test-signing-key")

	token, err := GenerateToken(signingKey, 42, "curl/8.0")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(signingKey, token, "curl/8.0")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "curl/8.0", claims.UserAgent)
}

func TestParseToken_WrongUserAgent(t *testing.T) {
	signingKey := []byte("test-signing-key")

	token, err := GenerateToken(signingKey, 42, "curl/8.0")
	require.NoError(t, err)

	_, err = ParseToken(signingKey, token, "Mozilla/5.0")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSigningKey(t *testing.T) {
	token, err := GenerateToken([]byte("key-one"), 42, "curl/8.0")
	require.NoError(t, err)

	_, err = ParseToken([]byte("key-two"), token, "curl/8.0")
	require.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken([]byte("test-signing-key"), "not.a.token", "curl/8.0")
	require.Error(t, err)
}
