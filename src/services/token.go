package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/models"
)

const (
	// MinSecretLength is the shortest accepted HS256 signing key
	MinSecretLength = 32
	// DefaultTokenTTL is the session lifetime when none is configured
	DefaultTokenTTL = 24 * time.Hour
)

// Claims is the payload of an admin session token
type Claims struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AdminID parses the id claim
func (c *Claims) AdminID() (uuid.UUID, error) {
	return uuid.Parse(c.ID)
}

// TokenManager issues and verifies HS256 session tokens
type TokenManager struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

// NewTokenManager creates a token manager with the given signing key
func NewTokenManager(secret string, expiresIn time.Duration) (*TokenManager, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("JWT secret must be at least %d characters, got %d", MinSecretLength, len(secret))
	}
	if expiresIn <= 0 {
		return nil, errors.New("token expiry must be positive")
	}
	return &TokenManager{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}, nil
}

// Issue signs a token for admin
func (m *TokenManager) Issue(admin *models.Admin) (string, error) {
	now := m.now()
	claims := Claims{
		ID:    admin.ID.String(),
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return signedToken, nil
}

// Parse verifies the signature and expiry of tokenString
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid JWT token")
	}
	return claims, nil
}
