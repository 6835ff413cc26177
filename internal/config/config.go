package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents mvr configuration options
type Config struct {
	// WindowMinutes is the default recency window in minutes
	WindowMinutes int `yaml:"window_minutes"`

	// Color controls colored output: auto, always, never
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		WindowMinutes: 5,
		Color:         "auto",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.WindowMinutes != 0 {
		cfg.WindowMinutes = fileCfg.WindowMinutes
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(window *int, colorMode *string) {
	if window != nil {
		c.WindowMinutes = *window
	}
	if colorMode != nil {
		c.Color = *colorMode
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.WindowMinutes <= 0 {
		return fmt.Errorf("window must be a positive number of minutes, got %d", c.WindowMinutes)
	}

	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.Color] {
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	return nil
}
