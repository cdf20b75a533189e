package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by Hash when the password is empty.
var ErrEmptyPassword = errors.New("password: password must not be empty")

// maxBcryptBytes is the bcrypt input limit. Input beyond it is truncated
// identically in Hash and Verify so the two always agree.
const maxBcryptBytes = 72

// Hasher hashes and verifies passwords using bcrypt.
type Hasher struct {
	cfg Config
}

// NewHasher creates a bcrypt-based password hasher.
func NewHasher(cfg Config) *Hasher {
	cfg.ApplyDefaults()
	return &Hasher{cfg: cfg}
}

// Hash returns a salted bcrypt digest of the password. The salt is random
// per call: hashing the same password twice yields different digests.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword(truncate(password), h.cfg.Cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether the password reproduces the digest. It never
// returns an error: empty input or a structurally invalid digest is false.
func (h *Hasher) Verify(password, digest string) bool {
	if password == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxBcryptBytes {
		b = b[:maxBcryptBytes]
	}
	return b
}
