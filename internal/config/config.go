// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// LLM collaborator
	APIKey         string  `json:"api_key,omitempty"`         // Gemini API key
	Model          string  `json:"model,omitempty"`           // Override for the standard-tier model
	TimeoutSeconds float64 `json:"timeout_seconds,omitempty"` // Per-attempt LLM timeout

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // host:port for the HTTP server

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// DefaultListenAddr is used when no listen address is configured
const DefaultListenAddr = ":8080"

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Values already set
// on c are kept; the environment only fills gaps.
func (c *Config) FromEnv() *Config {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.ListenAddr == "" {
		c.ListenAddr = os.Getenv("LISTEN_ADDR")
	}
	return c
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}

// Timeout returns the configured LLM timeout, or zero when unset so
// callers apply their own default.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
