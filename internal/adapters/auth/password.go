package auth

import (
	"golang.org/x/crypto/bcrypt"

	"eventmanagement/internal/domain"
)

type bcryptComparer struct{}

// NewBcryptComparer returns a PasswordComparer backed by bcrypt. The
// stored hash is produced with `htpasswd -bnBC 12` or equivalent.
func NewBcryptComparer() domain.PasswordComparer {
	return &bcryptComparer{}
}

func (c *bcryptComparer) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
