package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix: AUTHKIT_AUTH_TOKEN_SECRET
// maps to auth.token.secret.
const envPrefix = "AUTHKIT"

// boundKeys are the configuration keys bound to environment variables.
// viper's AutomaticEnv alone cannot populate Unmarshal targets, so known
// keys are bound explicitly.
var boundKeys = []string{
	"environment",
	"logger.level",
	"logger.format",
	"logger.output",
	"database.dsn",
	"database.auto_migrate",
	"auth.token.secret",
	"auth.token.ttl",
	"auth.password.cost",
	"auth.cookie.cookie_name",
	"auth.cookie.domain",
	"observability.enabled",
	"observability.endpoint",
	"server.addr",
}

// LoaderOption configures Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load assembles the configuration from the YAML file, the .env file and
// AUTHKIT_-prefixed environment variables, applies defaults and validates.
func Load(opts ...LoaderOption) (*Config, error) {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.envFile == "" && fileExists(".env") {
		o.envFile = ".env"
	}
	if o.envFile != "" && fileExists(o.envFile) {
		if err := godotenv.Load(o.envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", o.envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range boundKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if o.configFile == "" && fileExists("config.yml") {
		o.configFile = "config.yml"
	}
	if o.configFile != "" && fileExists(o.configFile) {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", o.configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
