package credential

import (
	"fmt"
	"time"

	"github.com/kbukum/authkit/token"
)

// nearExpiryWindow is the remaining-lifetime window, in seconds, that counts
// as "near expiry". A valid token with 0 < remaining <= window signals an
// upcoming refresh need.
const nearExpiryWindow = 900 * time.Second

// Verifier verifies a signed token and returns its claims.
// Satisfied by *token.Codec.
type Verifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Store validates and persists the credential bundle.
type Store struct {
	storage Storage
	codec   Verifier
	now     func() time.Time
}

// StoreOption configures the store.
type StoreOption func(*Store)

// WithStoreClock overrides the time source. Intended for tests.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates a credential store over the given backend and verifier.
func NewStore(storage Storage, codec Verifier, opts ...StoreOption) *Store {
	s := &Store{storage: storage, codec: codec, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save serializes and persists the bundle.
func (s *Store) Save(signedToken string, identity Identity) error {
	b := &Bundle{Token: signedToken, User: identity}
	raw, err := b.Encode()
	if err != nil {
		return fmt.Errorf("credential: encode bundle: %w", err)
	}
	if err := s.storage.Write(raw); err != nil {
		return fmt.Errorf("credential: store bundle: %w", err)
	}
	return nil
}

// Retrieve returns the stored bundle, or nil when no trustworthy credential
// exists. Any failure (unparseable data, missing fields, failed
// verification, or a mismatch between the unsigned copy and the signed
// claims) purges the stored credential.
func (s *Store) Retrieve() *Bundle {
	b, _ := s.retrieve()
	return b
}

func (s *Store) retrieve() (*Bundle, *token.Claims) {
	raw, present, err := s.storage.Read()
	if err != nil || !present {
		return nil, nil
	}

	b, err := DecodeBundle(raw)
	if err != nil {
		s.purge()
		return nil, nil
	}

	claims, err := s.codec.Verify(b.Token)
	if err != nil {
		s.purge()
		return nil, nil
	}

	// Tamper detection: the unsigned copy must match the signed claims.
	if claims.UserID != b.User.UserID || claims.Email != b.User.Email {
		s.purge()
		return nil, nil
	}

	return b, claims
}

// IsAuthenticated reports whether a trustworthy credential is stored.
func (s *Store) IsAuthenticated() bool {
	return s.Retrieve() != nil
}

// Clear unconditionally purges the stored credential.
func (s *Store) Clear() {
	s.purge()
}

// NearExpiry reports whether a valid stored token's remaining lifetime is in
// (0, 900] seconds. It never fails; any error reads as false.
func (s *Store) NearExpiry() bool {
	_, claims, ok := s.validBundle()
	if !ok || claims.ExpiresAt == nil {
		return false
	}
	remaining := claims.ExpiresAt.Time.Sub(s.now())
	return remaining > 0 && remaining <= nearExpiryWindow
}

func (s *Store) validBundle() (*Bundle, *token.Claims, bool) {
	b, claims := s.retrieve()
	if b == nil || claims == nil {
		return nil, nil, false
	}
	return b, claims, true
}

func (s *Store) purge() {
	// Best effort: a failing backend cannot make purge fail louder than the
	// nil result the caller already gets.
	_ = s.storage.Clear()
}
