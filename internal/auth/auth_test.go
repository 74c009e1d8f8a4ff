package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test_secret")

	token, err := GenerateToken("65f0c0ffee0000000000abcd", "admin", secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "65f0c0ffee0000000000abcd", claims.UserID)
	assert.Equal(t, "admin", claims.UserType)

	expiry := claims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(TokenValidity), expiry, 5*time.Second)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("65f0c0ffee0000000000abcd", "user", []byte("secret_one"))
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("secret_two"))
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", []byte("test_secret"))
	assert.Error(t, err)
}
