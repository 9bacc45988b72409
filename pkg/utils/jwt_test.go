package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()
	posID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "manager@example.com", "manager", &posID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "manager@example.com", claims.Email)
	assert.Equal(t, "manager", claims.Role)
	require.NotNil(t, claims.PointOfSaleID)
	assert.Equal(t, posID, *claims.PointOfSaleID)
}

func TestJWTManager_AccessTokenWithoutPointOfSale(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "admin@example.com", "admin", nil)
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.PointOfSaleID)
}

func TestJWTManager_RefreshTokenRoundTrip(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	parsed, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := utils.NewJWTManager("other-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "a@example.com", "staff", nil)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "a@example.com", "staff", nil)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	manager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	_, err := manager.ValidateAccessToken("not-a-token")
	assert.Error(t, err)

	_, err = manager.ValidateRefreshToken("not-a-token")
	assert.Error(t, err)
}
