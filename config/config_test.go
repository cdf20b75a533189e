package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Environment != EnvDevelopment {
		t.Errorf("expected development, got %s", cfg.Environment)
	}
	if cfg.Auth.Token.TTL != 24*time.Hour {
		t.Errorf("expected 24h token TTL, got %s", cfg.Auth.Token.TTL)
	}
	if cfg.Auth.Password.Cost != 12 {
		t.Errorf("expected bcrypt cost 12, got %d", cfg.Auth.Password.Cost)
	}
	if cfg.Auth.Cookie.MaxAge != 86400 {
		t.Errorf("expected 1-day cookie, got %d", cfg.Auth.Cookie.MaxAge)
	}
	if cfg.Auth.Cookie.Secure {
		t.Error("development cookie must not be Secure")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr)
	}
}

func TestConfig_SecureCookieOutsideDevelopment(t *testing.T) {
	for _, env := range []string{EnvProduction, EnvTest} {
		cfg := Config{Environment: env}
		cfg.ApplyDefaults()
		if !cfg.Auth.Cookie.Secure {
			t.Errorf("%s: cookie must be Secure", env)
		}
	}
}

func TestConfig_Validate_UnknownEnvironment(t *testing.T) {
	cfg := Config{Environment: "staging"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("unknown environment should fail validation")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AUTHKIT_ENVIRONMENT", "production")
	t.Setenv("AUTHKIT_AUTH_TOKEN_SECRET", "env-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Environment != EnvProduction {
		t.Errorf("expected production, got %s", cfg.Environment)
	}
	if cfg.Auth.Token.Secret != "env-secret" {
		t.Errorf("expected env-secret, got %q", cfg.Auth.Token.Secret)
	}
	if !cfg.Auth.Cookie.Secure {
		t.Error("production cookie must be Secure")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yaml := []byte("environment: test\nauth:\n  token:\n    secret: file-secret\n")
	if err := os.WriteFile(path, yaml, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Environment != EnvTest {
		t.Errorf("expected test, got %s", cfg.Environment)
	}
	if cfg.Auth.Token.Secret != "file-secret" {
		t.Errorf("expected file-secret, got %q", cfg.Auth.Token.Secret)
	}
}
