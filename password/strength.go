package password

import (
	"fmt"
	"strings"
	"unicode"
)

// SpecialCharacters is the fixed set of characters that satisfy the
// special-character rule.
const SpecialCharacters = "!@#$%^&*()_+-=[]{};':\"|,.<>/?`~"

// StrengthResult reports the outcome of a strength check.
// Errors lists every violated rule, in rule order.
type StrengthResult struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// ValidateStrength checks the password against the policy. Rules are
// evaluated cumulatively, never short-circuited, and reported in a fixed
// order: non-empty, minimum length, maximum length, lowercase, uppercase,
// digit, special character.
func (h *Hasher) ValidateStrength(password string) StrengthResult {
	var violations []string

	if password == "" {
		violations = append(violations, "Password is required")
		return StrengthResult{Valid: false, Errors: violations}
	}

	if len(password) < h.cfg.MinLength {
		violations = append(violations, fmt.Sprintf("Password must be at least %d characters long", h.cfg.MinLength))
	}
	if len(password) > h.cfg.MaxLength {
		violations = append(violations, fmt.Sprintf("Password must be at most %d characters long", h.cfg.MaxLength))
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(SpecialCharacters, r):
			hasSpecial = true
		}
	}

	if !hasLower {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}
	if !hasUpper {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}
	if !hasDigit {
		violations = append(violations, "Password must contain at least one number")
	}
	if !hasSpecial {
		violations = append(violations, "Password must contain at least one special character")
	}

	return StrengthResult{Valid: len(violations) == 0, Errors: violations}
}
