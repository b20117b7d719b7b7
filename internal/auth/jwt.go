// Package auth handles admin session tokens: HS256 JWT generation and
// validation for the single back-office identity.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "k2k-world"

// JWTManager signs and verifies admin session tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a manager signing with secret for ttl-long sessions.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a signed HS256 JWT with the admin email as subject.
func (m *JWTManager) GenerateToken(email string) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("auth.JWTManager.GenerateToken: signing secret is not configured")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth.JWTManager.GenerateToken: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token and returns the admin
// email it was issued to. Expired, malformed, or foreign-issuer tokens fail.
func (m *JWTManager) ValidateToken(tokenString string) (string, error) {
	// With no secret configured every HMAC check would run against the
	// empty key, which anyone can sign with. Refuse outright.
	if len(m.secret) == 0 {
		return "", fmt.Errorf("auth.JWTManager.ValidateToken: signing secret is not configured")
	}
	if tokenString == "" {
		return "", fmt.Errorf("auth.JWTManager.ValidateToken: token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("auth.JWTManager.ValidateToken: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("auth.JWTManager.ValidateToken: invalid claims")
	}
	if claims.Issuer != issuer {
		return "", fmt.Errorf("auth.JWTManager.ValidateToken: invalid issuer %q", claims.Issuer)
	}

	return claims.Subject, nil
}
