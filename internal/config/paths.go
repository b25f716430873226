package config

import (
	"os"
	"path/filepath"
)

// Dir returns the configuration directory path (~/.config/namefinder).
// It can be overridden with the NAMEFINDER_CONFIG_DIR environment variable.
func Dir() string {
	if d := os.Getenv("NAMEFINDER_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "namefinder")
	}
	return filepath.Join(home, ".config", "namefinder")
}

// ConfigFile returns the path to the config.yaml file.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogFile returns the default log file path.
func LogFile() string {
	return filepath.Join(Dir(), "namefinder.log")
}
