package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chou-ng-coder/ocr-website/internal/config"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, expired, malformed. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies HS256 session tokens. The username travels
// in the subject claim.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a TokenManager from config. The signing secret is
// required; there is no insecure default.
func NewTokenManager(cfg config.AuthConfig) (*TokenManager, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("auth secret key is required")
	}
	ttl := time.Duration(cfg.TokenTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenManager{secret: []byte(cfg.SecretKey), ttl: ttl}, nil
}

// Issue signs a time-limited token for the given username.
func (m *TokenManager) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Subject verifies a token and returns the username it was issued for.
// The accepted algorithm is pinned to HS256 to prevent algorithm confusion.
func (m *TokenManager) Subject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
