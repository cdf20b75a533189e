package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors. Callers distinguish verification outcomes with errors.Is.
var (
	// ErrSecretMissing is returned when the signing secret is unset or blank.
	ErrSecretMissing = errors.New("token: signing secret is not configured")
	// ErrInvalidPayload is returned by Sign when userId or email is missing
	// or blank after trimming.
	ErrInvalidPayload = errors.New("token: payload requires a non-empty userId and email")
	// ErrTokenMalformed is returned when the token is not three non-empty
	// dot-separated segments.
	ErrTokenMalformed = errors.New("token: malformed token")
	// ErrTokenExpired is returned when the current time is at or past exp.
	ErrTokenExpired = errors.New("token: token expired")
	// ErrTokenInvalid is returned when the signature does not verify.
	ErrTokenInvalid = errors.New("token: invalid token")
)

// Payload is the caller-supplied identity to embed in a token.
type Payload struct {
	UserID string
	Email  string
}

// Claims is the signed token payload.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a process-wide symmetric secret.
type Codec struct {
	cfg Config
	now func() time.Time
}

// Option configures the codec.
type Option func(*Codec)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec creates a token codec. The secret may be blank at construction;
// blankness fails each Sign/Verify call instead, so a misconfigured process
// fails loudly on first use rather than at wiring time.
func NewCodec(cfg Config, opts ...Option) *Codec {
	cfg.ApplyDefaults()
	c := &Codec{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration { return c.cfg.TTL }

// Sign issues a signed token for the payload. iat is now, exp is now + TTL.
// Payload validation happens before the secret is touched.
func (c *Codec) Sign(p Payload) (string, error) {
	if strings.TrimSpace(p.UserID) == "" || strings.TrimSpace(p.Email) == "" {
		return "", ErrInvalidPayload
	}
	if strings.TrimSpace(c.cfg.Secret) == "" {
		return "", ErrSecretMissing
	}

	now := c.now()
	claims := Claims{
		UserID: p.UserID,
		Email:  p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the claims.
// Outcomes: ErrSecretMissing, ErrTokenMalformed, ErrTokenExpired,
// ErrTokenInvalid.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	if strings.TrimSpace(c.cfg.Secret) == "" {
		return nil, ErrSecretMissing
	}
	if !wellFormed(tokenString) {
		return nil, ErrTokenMalformed
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
		}
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Decode parses the payload segment without verifying the signature or
// touching the secret. Returns nil on any structural failure.
// Diagnostics only, never an authorization input.
func (c *Codec) Decode(tokenString string) *Claims {
	if !wellFormed(tokenString) {
		return nil
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil
	}
	return claims
}

func (c *Codec) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return []byte(c.cfg.Secret), nil
}

// wellFormed reports whether the token is exactly three non-empty
// dot-separated segments.
func wellFormed(tokenString string) bool {
	parts := strings.Split(tokenString, ".")
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
