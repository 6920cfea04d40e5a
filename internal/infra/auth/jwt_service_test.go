package auth

import (
	"testing"
	"time"

	"farmlease/config"
	"farmlease/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, "landowner")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "landowner", accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	require.NotNil(t, accessClaims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(defaultAccessTTL), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	assert.Equal(t, defaultRefreshTTL, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "admin",
		"type": service.TokenTypeAccess,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("attacker-secret"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": service.TokenTypeAccess,
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RefreshTokenSignedWithAccessSecretRejected(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": service.TokenTypeRefresh,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	cfg := newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}
