package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt rejects inputs longer than this
const bcryptMaxInput = 72

// PasswordHasher hashes passwords with bcrypt after appending a server-side pepper.
type PasswordHasher struct {
	pepper string
	cost   int
}

func NewPasswordHasher(pepper string, cost int) (*PasswordHasher, error) {
	if pepper == "" {
		return nil, errors.New("password pepper is required")
	}
	if len(pepper) >= bcryptMaxInput {
		return nil, fmt.Errorf("password pepper must be shorter than %d bytes", bcryptMaxInput)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &PasswordHasher{pepper: pepper, cost: cost}, nil
}

// Hash returns the bcrypt digest of password+pepper. The only error for
// non-empty input is bcrypt.ErrPasswordTooLong.
func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password+h.pepper), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// MaxPasswordLength is the longest password in bytes that still fits
// bcrypt's input limit once the pepper is appended.
func (h *PasswordHasher) MaxPasswordLength() int {
	return bcryptMaxInput - len(h.pepper)
}

func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password+h.pepper)) == nil
}
