package services

import (
	"context"
	"strings"
	"time"

	"eventmanagement/internal/domain"
)

type authService struct {
	adminEmail        string
	adminPasswordHash string
	comparer          domain.PasswordComparer
	issuer            domain.TokenIssuer
	tokenTTL          time.Duration
}

// NewAuthService creates the admin authentication service. The admin
// account comes from configuration: an email and a bcrypt password hash.
func NewAuthService(adminEmail, adminPasswordHash string, comparer domain.PasswordComparer, issuer domain.TokenIssuer, tokenTTL time.Duration) domain.AuthService {
	return &authService{
		adminEmail:        strings.ToLower(adminEmail),
		adminPasswordHash: adminPasswordHash,
		comparer:          comparer,
		issuer:            issuer,
		tokenTTL:          tokenTTL,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	// Identical failure for unknown email and wrong password.
	if s.adminEmail == "" || email != s.adminEmail {
		return "", &domain.UnauthorizedError{Message: "invalid credentials"}
	}
	if err := s.comparer.Compare(s.adminPasswordHash, password); err != nil {
		return "", &domain.UnauthorizedError{Message: "invalid credentials"}
	}
	token, err := s.issuer.Issue(email, s.tokenTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}
