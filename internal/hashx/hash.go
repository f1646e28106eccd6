// Package hashx implements password-at-rest protection with bcrypt.
package hashx

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords. The digest is self-describing: it
// embeds the algorithm id, work factor, and salt, so no extra columns are
// needed to verify it later.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}

// BcryptHasher is the default Hasher, using bcrypt at the library's default
// cost (calibrated to the ~100 ms class on desktop hardware).
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns a salted bcrypt digest of plaintext. Two calls with the same
// plaintext produce distinct digests.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plaintext produced digest. A mismatch is (false, nil);
// any other outcome (malformed digest, unsupported version) is an error, so
// callers can tell "wrong password" apart from a broken stored value.
func (h *BcryptHasher) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify password: %w", err)
}
