// Package credentials implements the domain's CredentialVerifier port.
package credentials

import (
	"fmt"

	"comedor/domain/user"

	"golang.org/x/crypto/bcrypt"
)

// BcryptVerifier hashes and verifies passwords with bcrypt.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a verifier with the given cost; values outside
// bcrypt's range fall back to the default cost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash derives the bcrypt hash of a password.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash.
func (v *BcryptVerifier) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ user.CredentialVerifier = (*BcryptVerifier)(nil)
