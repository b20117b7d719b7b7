package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jayxvj/k2k-world/internal/auth"
	"github.com/jayxvj/k2k-world/internal/domain"
)

// AuthService authenticates the single back-office identity and issues
// session tokens. There is no user table: the admin email and bcrypt
// password hash come from the environment.
type AuthService struct {
	adminEmail   string
	passwordHash string
	tokens       *auth.JWTManager
	configured   bool
}

// NewAuthService constructs an AuthService. When configured is false every
// sign-in attempt returns domain.ErrAuthNotConfigured, a condition the login
// UI must present distinctly from bad credentials.
func NewAuthService(adminEmail, passwordHash string, tokens *auth.JWTManager, configured bool) *AuthService {
	return &AuthService{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		tokens:       tokens,
		configured:   configured,
	}
}

// SignIn verifies the email/password pair and returns a signed session
// token. Unknown email and wrong password both map to
// domain.ErrUnauthorized so the form can't be used to probe for the admin
// address.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	if !s.configured {
		return "", fmt.Errorf("service.AuthService.SignIn: %w", domain.ErrAuthNotConfigured)
	}

	email = strings.TrimSpace(email)
	if !strings.EqualFold(email, s.adminEmail) {
		return "", fmt.Errorf("service.AuthService.SignIn: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("service.AuthService.SignIn: %w", domain.ErrUnauthorized)
	}

	token, err := s.tokens.GenerateToken(s.adminEmail)
	if err != nil {
		return "", fmt.Errorf("service.AuthService.SignIn: %w", err)
	}
	return token, nil
}
