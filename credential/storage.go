package credential

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Storage is the persistence backend for the serialized bundle.
type Storage interface {
	// Read returns the stored value and whether anything is stored.
	Read() (value string, present bool, err error)
	// Write persists the value.
	Write(value string) error
	// Clear removes the stored value.
	Clear() error
}

// CookieStorage persists the bundle in a request-scoped cookie with a strict
// same-site policy. Each instance is bound to a single gin request context.
type CookieStorage struct {
	c   *gin.Context
	cfg Config
}

// NewCookieStorage creates cookie-backed storage for the given request.
func NewCookieStorage(c *gin.Context, cfg Config) *CookieStorage {
	cfg.ApplyDefaults()
	return &CookieStorage{c: c, cfg: cfg}
}

// Read returns the credential cookie value, if present.
func (s *CookieStorage) Read() (string, bool, error) {
	value, err := s.c.Cookie(s.cfg.CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Write sets the credential cookie: 1-day expiry, SameSite=Strict, path "/",
// Secure outside development. The cookie is read by client code, so it is
// deliberately not HttpOnly.
func (s *CookieStorage) Write(value string) error {
	s.c.SetSameSite(http.SameSiteStrictMode)
	s.c.SetCookie(s.cfg.CookieName, value, s.cfg.MaxAge, s.cfg.Path, s.cfg.Domain, s.cfg.Secure, false)
	return nil
}

// Clear expires the credential cookie.
func (s *CookieStorage) Clear() error {
	s.c.SetSameSite(http.SameSiteStrictMode)
	s.c.SetCookie(s.cfg.CookieName, "", -1, s.cfg.Path, s.cfg.Domain, s.cfg.Secure, false)
	return nil
}

// MemoryStorage is an in-memory Storage for tests and non-browser clients.
type MemoryStorage struct {
	value   string
	present bool

	// ReadErr and WriteErr, when set, are returned by the corresponding
	// operation. Used to exercise storage failure paths in tests.
	ReadErr  error
	WriteErr error
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Read() (string, bool, error) {
	if s.ReadErr != nil {
		return "", false, s.ReadErr
	}
	return s.value, s.present, nil
}

func (s *MemoryStorage) Write(value string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.value = value
	s.present = true
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.value = ""
	s.present = false
	return nil
}
