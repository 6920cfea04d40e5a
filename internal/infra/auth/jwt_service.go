// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"farmlease/config"
	"farmlease/internal/domain/service"
	"farmlease/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return svc, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and role.
func (s *jwtService) GenerateTokens(userID uuid.UUID, role string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, role, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, "", s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken verifies the signature against the secret matching the
// token's declared type, then checks expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	unverified := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, unverified); err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	tokenType, _ := unverified["type"].(string)
	var secret string
	switch tokenType {
	case service.TokenTypeAccess:
		secret = s.accessSecret
	case service.TokenTypeRefresh:
		secret = s.refreshSecret
	default:
		return nil, errors.Errorf("unknown token type %q", tokenType)
	}

	mapClaims := jwt.MapClaims{}
	token, err := parser.ParseWithClaims(tokenString, mapClaims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}

	claims := &service.Claims{
		UserID: userID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: sub,
		},
	}
	claims.Role, _ = mapClaims["role"].(string)
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, role string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),     // Subject (who the token is for)
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
		"type": tokenType,           // Type of token (access or refresh)
		"jti":  uuid.NewString(),    // Keeps tokens issued in the same second distinct
	}
	// Only the access token carries the role.
	if role != "" {
		claims["role"] = role
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
