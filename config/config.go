// Package config manages application configuration.
package config

import (
	"os"
	"path/filepath"
)

// Config holds the application-wide settings.
type Config struct {
	// DataDir is the directory holding the address book database.
	DataDir string
}

// NewConfig reads settings from the environment and applies defaults.
func NewConfig() *Config {
	dataDir := os.Getenv("CONTACTBOOK_DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(".", "data")
	}

	return &Config{
		DataDir: dataDir,
	}
}
