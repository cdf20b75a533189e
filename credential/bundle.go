package credential

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrBundleMalformed is returned when stored data cannot be parsed into a
// structurally valid bundle. Parsing has exactly two outcomes: malformed, or
// a Bundle with every required field present.
var ErrBundleMalformed = errors.New("credential: malformed bundle")

// Identity is the unsigned copy of the token's identity claims.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Bundle is the stored credential: the signed token and the identity copy.
// Invariant: the identity must match the signed claims exactly.
type Bundle struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// DecodeBundle parses raw stored data. It checks shape only (the token
// string and both identity fields must be non-empty) and performs no
// cryptographic verification.
func DecodeBundle(raw string) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, ErrBundleMalformed
	}
	if b.Token == "" || b.User.UserID == "" || b.User.Email == "" {
		return nil, ErrBundleMalformed
	}
	return &b, nil
}

// Encode serializes the bundle to its JSON wire format.
func (b *Bundle) Encode() (string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// TokenWellFormed reports whether the bundle's token has exactly three
// non-empty dot-separated segments. This is structural validation only, for
// edge contexts that hold no signing secret.
func (b *Bundle) TokenWellFormed() bool {
	parts := strings.Split(b.Token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}
