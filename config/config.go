package config

import (
	"fmt"

	"github.com/kbukum/authkit/credential"
	"github.com/kbukum/authkit/database"
	"github.com/kbukum/authkit/logger"
	"github.com/kbukum/authkit/observability"
	"github.com/kbukum/authkit/password"
	"github.com/kbukum/authkit/token"
)

// Deployment environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config is the application configuration.
type Config struct {
	// Environment is the deployment environment (default: development).
	Environment string `mapstructure:"environment"`

	// Logger configures log output.
	Logger logger.Config `mapstructure:"logger"`

	// Database configures the user store connection.
	Database database.Config `mapstructure:"database"`

	// Auth composes the auth subsystem configs.
	Auth AuthConfig `mapstructure:"auth"`

	// Observability configures trace export.
	Observability observability.Config `mapstructure:"observability"`

	// Server configures the HTTP listener.
	Server ServerConfig `mapstructure:"server"`
}

// AuthConfig composes the auth component configs.
type AuthConfig struct {
	// Token configures the signing codec (secret, TTL).
	Token token.Config `mapstructure:"token"`

	// Password configures hashing and strength policy.
	Password password.Config `mapstructure:"password"`

	// Cookie configures credential persistence.
	Cookie credential.Config `mapstructure:"cookie"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address (default: ":8080").
	Addr string `mapstructure:"addr"`
}

// ApplyDefaults cascades defaults through all sub-configurations.
// The credential cookie is marked Secure in any non-development environment.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	c.Logger.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Auth.Token.ApplyDefaults()
	c.Auth.Password.ApplyDefaults()
	c.Auth.Cookie.ApplyDefaults()
	c.Auth.Cookie.Secure = c.Environment != EnvDevelopment
	c.Observability.ApplyDefaults()
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
}

// Validate checks all sub-configurations.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("config: unknown environment %q", c.Environment)
	}
	if err := c.Auth.Token.Validate(); err != nil {
		return fmt.Errorf("config: auth.token: %w", err)
	}
	if err := c.Auth.Password.Validate(); err != nil {
		return fmt.Errorf("config: auth.password: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("config: database: %w", err)
	}
	return nil
}

// IsProduction reports whether the environment is production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
