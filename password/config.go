package password

import "fmt"

// Config configures password hashing and strength policy.
// Loadable from YAML/env via mapstructure tags.
type Config struct {
	// Cost is the bcrypt cost parameter (default: 12, range: 4-31).
	Cost int `mapstructure:"cost"`

	// MinLength is the minimum password length (default: 8).
	MinLength int `mapstructure:"min_length"`

	// MaxLength is the maximum password length (default: 128).
	MaxLength int `mapstructure:"max_length"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Cost == 0 {
		c.Cost = 12
	}
	if c.MinLength == 0 {
		c.MinLength = 8
	}
	if c.MaxLength == 0 {
		c.MaxLength = 128
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Cost < 4 || c.Cost > 31 {
		return fmt.Errorf("cost must be between 4 and 31 (got: %d)", c.Cost)
	}
	if c.MinLength < 1 {
		return fmt.Errorf("min_length must be >= 1 (got: %d)", c.MinLength)
	}
	if c.MaxLength < c.MinLength {
		return fmt.Errorf("max_length must be >= min_length (got: %d < %d)", c.MaxLength, c.MinLength)
	}
	return nil
}
