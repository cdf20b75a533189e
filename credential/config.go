package credential

// DefaultCookieName is the cookie holding the credential bundle.
const DefaultCookieName = "auth_credential"

// Config configures credential cookie persistence.
// Loadable from YAML/env via mapstructure tags.
type Config struct {
	// CookieName is the name of the credential cookie (default: auth_credential).
	CookieName string `mapstructure:"cookie_name"`

	// MaxAge is the cookie lifetime in seconds (default: 86400, one day).
	MaxAge int `mapstructure:"max_age"`

	// Path is the cookie path (default: "/").
	Path string `mapstructure:"path"`

	// Domain restricts the cookie domain (default: host-only).
	Domain string `mapstructure:"domain"`

	// Secure marks the cookie Secure. Set in any non-development deployment.
	Secure bool `mapstructure:"secure"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.CookieName == "" {
		c.CookieName = DefaultCookieName
	}
	if c.MaxAge == 0 {
		c.MaxAge = 86400
	}
	if c.Path == "" {
		c.Path = "/"
	}
}
