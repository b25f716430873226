// Package logging configures the process-wide zerolog logger. The terminal
// belongs to the UI, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// Nothing is written until Setup picks a destination.
	log.Logger = zerolog.Nop()
}

// ParseLevel maps a config value such as "debug" or "warn" to a zerolog
// level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// Setup points the global logger at path, creating parent directories as
// needed. The returned closer flushes the file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f, lvl)
	return f, nil
}

// SetOutput sends log records to w at the given level.
func SetOutput(w io.Writer, level zerolog.Level) {
	log.Logger = zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Disable drops all records, as before Setup.
func Disable() {
	log.Logger = zerolog.Nop()
}

// For returns a child logger tagged with a component name.
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
