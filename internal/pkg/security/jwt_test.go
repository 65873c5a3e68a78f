package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "leo", []string{"USER", "ADMIN"})
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "leo", claims.Username)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.Roles)
	assert.Equal(t, "YaTube", claims.Issuer)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(1, "leo", []string{"USER"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[2] = "forged" + parts[2]
	_, err = ValidateToken(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(1, "leo", []string{"USER"})
	require.NoError(t, err)

	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.Equal(t, strings.Split(token, ".")[2], sig)

	_, err = ExtractSignature("no-dots-here")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret99")
	require.NoError(t, err)
	assert.NotEqual(t, "secret99", hash)

	assert.NoError(t, CheckPasswordHash("secret99", hash))
	assert.Error(t, CheckPasswordHash("wrong", hash))
}
