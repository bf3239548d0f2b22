package jwt

import (
	"testing"

	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "ridetrack-test",
	}

	token, err := GenerateToken("user-123", "member", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, "ridetrack-test", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60}

	token, err := GenerateToken("user-123", "leader", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, models.JWTConfig{Secret: "other-secret"})
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", models.JWTConfig{Secret: "test-secret"})
	assert.Error(t, err)
}
