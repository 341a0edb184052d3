// ABOUTME: XDG-based config directory resolution for the hypergallery CLI.
// ABOUTME: Checks XDG_CONFIG_HOME, falls back to ~/.config/hypergallery.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigDir returns the directory holding the user-level config.yaml.
func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hypergallery"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "hypergallery"), nil
}
