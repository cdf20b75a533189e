package token

import (
	"fmt"
	"time"
)

// Config configures the token codec.
// Loadable from YAML/env via mapstructure tags.
type Config struct {
	// Secret is the HMAC signing key. A blank secret is a hard failure for
	// every signing and verification call.
	Secret string `mapstructure:"secret"`

	// TTL is the token lifetime (default: 24h). exp - iat always equals TTL.
	TTL time.Duration `mapstructure:"ttl"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = 24 * time.Hour
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be positive (got: %s)", c.TTL)
	}
	return nil
}
