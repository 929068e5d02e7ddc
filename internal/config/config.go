// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort           = 8000
	DefaultExportsDir     = "exports/scribe"
	DefaultMaxUploadBytes = 15 << 20
)

// Config holds the runtime configuration. DatabaseURL is optional: without
// it the extraction history layer is simply disabled.
type Config struct {
	Port           int    `validate:"gte=1,lte=65535"`
	ExportsDir     string `validate:"required"`
	DatabaseURL    string
	MaxUploadBytes int64 `validate:"gt=0"`
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset and validating the result.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           DefaultPort,
		ExportsDir:     DefaultExportsDir,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MaxUploadBytes: DefaultMaxUploadBytes,
	}

	if v := os.Getenv("SCRIBE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SCRIBE_PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("SCRIBE_EXPORTS_DIR"); v != "" {
		cfg.ExportsDir = v
	}
	if v := os.Getenv("SCRIBE_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SCRIBE_MAX_UPLOAD_BYTES %q: %w", v, err)
		}
		cfg.MaxUploadBytes = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
