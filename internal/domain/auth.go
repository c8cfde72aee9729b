package domain

import (
	"context"
	"time"
)

// TokenIssuer signs access tokens for authenticated admins.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier validates an access token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// PasswordComparer checks a plaintext password against a stored hash.
type PasswordComparer interface {
	Compare(hash, password string) error
}

// AuthService authenticates the admin account and issues access tokens.
type AuthService interface {
	// Login fails with UnauthorizedError on unknown email or wrong
	// password.
	Login(ctx context.Context, email, password string) (token string, err error)
}
