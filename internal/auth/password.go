package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

// MinPasswordLength is the shortest password an operator account accepts
const MinPasswordLength = 8

// Hasher stores and checks operator passwords
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// BcryptHasher hashes operator passwords with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher; a cost outside bcrypt's range means bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash rejects passwords bcrypt can't represent faithfully with ErrInvalidPassword
func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: shorter than %d characters", domain.ErrInvalidPassword, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: longer than 72 bytes", domain.ErrInvalidPassword)
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare returns ErrInvalidCredentials on a mismatch; a corrupt hash is reported as is
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("compare password hash: %w", err)
	}
	return nil
}
