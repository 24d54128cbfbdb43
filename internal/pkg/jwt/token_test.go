package jwt

import (
	"testing"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "heartfund-test",
	}
}

func testUser() models.User {
	return models.User{
		ID:        uuid.New(),
		Name:      "Alice",
		Email:     "alice@example.com",
		AvatarURL: "https://cdn.example.com/alice.png",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	// Arrange
	cfg := getTestConfig()
	user := testUser()

	// Act
	tokenString, expiresAt, err := GenerateToken(user, cfg)
	require.NoError(t, err)
	claims, err := ValidateToken(tokenString, cfg.Secret)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "heartfund-test", claims.Issuer)

	principal := claims.User()
	assert.Equal(t, user.ID, principal.ID)
	assert.Equal(t, user.Name, principal.Name)
	assert.Equal(t, user.Email, principal.Email)
	assert.Equal(t, user.AvatarURL, principal.AvatarURL)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString, _, err := GenerateToken(testUser(), getTestConfig())
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "another-secret")

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()
	cfg.Expiration = -1

	tokenString, _, err := GenerateToken(testUser(), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.Secret)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{UserID: uuid.New()}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, getTestConfig().Secret)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not-a-token", getTestConfig().Secret)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
