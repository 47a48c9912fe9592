/*
Package auth implements password hashing, credential issuance and resolution,
and the capability checks that gate privileged actions.
*/
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"frenchreborn/internal/pkg/errs"
)

// Hasher is the Password Hasher boundary.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// BcryptHasher hashes with bcrypt at a fixed cost. bcrypt salts every hash and
// compares in constant time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, falling back to bcrypt.DefaultCost
// when cost is out of range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the encoded bcrypt hash of plaintext. Any failure is ErrHashingFailed
// and must abort the request.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errs.Wrap(errs.ErrInvalidPassword, err)
		}
		return "", errs.Wrap(errs.ErrHashingFailed, err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes never match.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
