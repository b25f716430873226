package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	NamesFile string       `yaml:"names_file"`
	UI        string       `yaml:"ui"` // "tui" or "desktop"
	Theme     string       `yaml:"theme"`
	Language  string       `yaml:"language"`
	Log       LogConfig    `yaml:"log"`
	Window    WindowConfig `yaml:"window"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// WindowConfig holds the desktop window size.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// UI front ends.
const (
	UITerminal = "tui"
	UIDesktop  = "desktop"
)

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		NamesFile: "names.txt",
		UI:        UITerminal,
		Theme:     "classic",
		Language:  DetectLanguage(),
		Log: LogConfig{
			Level: "info",
			File:  LogFile(),
		},
		Window: WindowConfig{
			Width:  400,
			Height: 450,
		},
	}
}

// Load reads the config from disk. If the file doesn't exist, returns defaults.
func Load() (Config, error) {
	return LoadFrom(ConfigFile())
}

// LoadFrom reads the config at path over the defaults. Fields missing from
// the file keep their default value.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigFile(), data, 0o644)
}

// Validate reports settings that cannot be used as given.
func (c Config) Validate() error {
	switch c.UI {
	case UITerminal, UIDesktop:
	default:
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UITerminal, UIDesktop)
	}
	if c.NamesFile == "" {
		return fmt.Errorf("names_file is empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %vx%v must be positive", c.Window.Width, c.Window.Height)
	}
	return nil
}

// IsFirstRun returns true if the config file does not exist.
func IsFirstRun() bool {
	_, err := os.Stat(ConfigFile())
	return os.IsNotExist(err)
}
