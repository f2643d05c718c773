// Package config provides configuration loading and validation for the CLI
// and the local server.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-tailor/internal/logger"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBackendURL is used when no flag, environment value or file sets one.
	DefaultBackendURL = "http://localhost:8000"
	// BackendURLEnv names the environment variable holding the backend base URL.
	BackendURLEnv = "BACKEND_URL"
)

// Config represents the client configuration. It can be loaded from a JSON or
// YAML file; all fields are optional and missing values fall back to
// environment values and then to Defaults.
type Config struct {
	BackendURL     string        `json:"backend_url,omitempty" yaml:"backend_url" validate:"omitempty,url"`
	TimeoutSeconds int           `json:"timeout_seconds,omitempty" yaml:"timeout_seconds" validate:"gte=0"` // 0 keeps the transport default (no timeout)
	StrictSchema   *bool         `json:"strict_schema,omitempty" yaml:"strict_schema"`                      // validate backend responses against the result schema; nil means unset
	Log            logger.Config `json:"log,omitempty" yaml:"log"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BackendURL:   DefaultBackendURL,
		StrictSchema: Bool(false),
		Log: logger.Config{
			Level:  "info",
			Format: "pretty",
		},
	}
}

// FromEnv reads the environment-provided part of the configuration.
func FromEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	return Config{
		BackendURL: strings.TrimSpace(getenv(BackendURLEnv)),
		Log: logger.Config{
			Level: strings.TrimSpace(getenv("LOG_LEVEL")),
		},
	}
}

// LoadConfig loads configuration from a JSON (.json) or YAML (.yaml, .yml) file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.BackendURL != "" {
		u, err := url.Parse(c.BackendURL)
		if err != nil {
			return fmt.Errorf("config error: invalid backend_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("config error: backend_url must use http or https, got %q", u.Scheme)
		}
	}

	switch c.Log.Format {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: log format must be json or pretty, got %q", c.Log.Format)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Calls chain from the highest precedence source down:
// flags.MergeWithDefaults(env).MergeWithDefaults(file).MergeWithDefaults(Defaults()).
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.BackendURL == "" {
		result.BackendURL = defaults.BackendURL
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Log.Level == "" {
		result.Log.Level = defaults.Log.Level
	}
	if result.Log.Format == "" {
		result.Log.Format = defaults.Log.Format
	}

	if result.StrictSchema == nil {
		result.StrictSchema = defaults.StrictSchema
	}

	return result
}

// Strict reports whether backend responses are schema-validated.
func (c Config) Strict() bool {
	return c.StrictSchema != nil && *c.StrictSchema
}

// Bool returns a pointer to v, for setting optional flags.
func Bool(v bool) *bool {
	return &v
}

// Timeout returns TimeoutSeconds as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BaseURL returns the backend base URL without a trailing slash.
func (c Config) BaseURL() string {
	return strings.TrimRight(c.BackendURL, "/")
}
