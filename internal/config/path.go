package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the config file path
// Priority order:
//  1. MVR_CONFIG environment variable (if set)
//  2. $XDG_CONFIG_HOME/mvr/config.yaml (if XDG_CONFIG_HOME is set)
//  3. ~/.config/mvr/config.yaml
//
// The file is not required to exist; LoadConfig falls back to defaults
func DefaultPath() string {
	// Try env var first
	if path := os.Getenv("MVR_CONFIG"); path != "" {
		return path
	}

	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "mvr", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mvr", "config.yaml")
}
