// Package config provides layered configuration for tools built on the
// orangic client.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (ORANGIC_ prefix)
//  4. Validation
//
// The library itself does not require a config file; orangic.Config can
// be built directly. This package exists for the CLI and for
// applications that want file-based settings.
package config

import (
	"time"

	"github.com/orangic/orangic-go/pkg/orangic"
)

// Config holds all configuration for orangic tooling.
type Config struct {
	Client  ClientConfig  `yaml:"client"`
	Logging LoggingConfig `yaml:"logging"`
}

// ClientConfig holds the API client settings.
type ClientConfig struct {
	// APIKey authenticates requests. Usually left empty here and
	// supplied via ORANGIC_API_KEY instead of a file on disk.
	APIKey string `yaml:"api_key"`

	// BaseURL is the API host.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds is the non-streaming request timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxRetries is the advisory retry budget.
	MaxRetries int `yaml:"max_retries"`
}

// LoggingConfig holds debug logging settings (see pkg/debug).
type LoggingConfig struct {
	// Debug is a comma-separated list of debug categories.
	Debug string `yaml:"debug"`

	// Level is the slog level (ERROR, WARN, INFO, DEBUG, TRACE).
	Level string `yaml:"level"`
}

// Defaults returns the built-in default configuration.
func Defaults() Config {
	return Config{
		Client: ClientConfig{
			BaseURL:        orangic.DefaultBaseURL,
			TimeoutSeconds: int(orangic.DefaultTimeout / time.Second),
			MaxRetries:     orangic.DefaultMaxRetries,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

// ToClient converts the loaded settings into an orangic.Config.
func (c *Config) ToClient() orangic.Config {
	return orangic.Config{
		APIKey:     c.Client.APIKey,
		BaseURL:    c.Client.BaseURL,
		Timeout:    time.Duration(c.Client.TimeoutSeconds) * time.Second,
		MaxRetries: c.Client.MaxRetries,
	}
}
