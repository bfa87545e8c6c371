package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const issuer = "vendor-shop-api"

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims carried by both access and refresh tokens.
type Claims struct {
	VendorID  uuid.UUID `json:"vendor_id"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 access/refresh token pairs.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a TokenManager signing with the given secret.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *TokenManager) generate(vendorID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		VendorID:  vendorID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// GenerateAccessToken issues a short-lived token used to authenticate API calls.
func (m *TokenManager) GenerateAccessToken(vendorID uuid.UUID) (string, error) {
	return m.generate(vendorID, tokenTypeAccess, m.accessTTL)
}

// GenerateRefreshToken issues a long-lived token exchangeable for new access tokens.
func (m *TokenManager) GenerateRefreshToken(vendorID uuid.UUID) (string, error) {
	return m.generate(vendorID, tokenTypeRefresh, m.refreshTTL)
}

func (m *TokenManager) validate(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.TokenType != wantType {
		return nil, errors.Errorf("token is not a %s token", wantType)
	}
	return claims, nil
}

// ValidateAccessToken parses and verifies an access token.
func (m *TokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, tokenTypeAccess)
}

// ValidateRefreshToken parses and verifies a refresh token.
func (m *TokenManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, tokenTypeRefresh)
}
