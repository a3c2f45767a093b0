// Package config loads clavekey settings from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the CLI and the HTTP surface read.
type Config struct {
	Addr           string        `env:"CLAVEKEY_ADDR" envDefault:":8000"`
	Debug          bool          `env:"CLAVEKEY_DEBUG"`
	RequestTimeout time.Duration `env:"CLAVEKEY_REQUEST_TIMEOUT" envDefault:"3s"`

	HMACSecret    string        `env:"LICENSE_HMAC_SECRET"`
	JWTPrivateKey string        `env:"LICENSE_JWT_PRIVATE_KEY"`
	JWTPublicKey  string        `env:"LICENSE_JWT_PUBLIC_KEY"`
	TokenTTL      time.Duration `env:"LICENSE_TOKEN_TTL" envDefault:"10m"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("LICENSE_TOKEN_TTL must be > 0, got %s", cfg.TokenTTL)
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("CLAVEKEY_REQUEST_TIMEOUT must be > 0, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}

// DebugFromEnv reports whether CLAVEKEY_DEBUG asks for debug logging.
// An unparsable value counts as off.
func DebugFromEnv() bool {
	var cfg struct {
		Debug bool `env:"CLAVEKEY_DEBUG"`
	}
	if err := ParseEnv(&cfg); err != nil {
		return false
	}
	return cfg.Debug
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
