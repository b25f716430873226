// Package names loads the list of names searched by namefinder.
package names

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/namefinder/namefinder/internal/logging"
)

// ErrNotFound is returned when the names file does not exist.
var ErrNotFound = errors.New("names file not found")

// ReadError reports a names file that exists but could not be read or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

var bom = []byte{0xEF, 0xBB, 0xBF}

// Load reads the names file at path and returns its trimmed, non-blank lines
// in file order. The returned slice is never nil, even on error.
func Load(path string) ([]string, error) {
	logger := logging.For("names")

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return []string{}, &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return []string{}, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return []string{}, &ReadError{Path: path, Err: err}
	}

	data = bytes.TrimPrefix(data, bom)
	if !utf8.Valid(data) {
		return []string{}, &ReadError{Path: path, Err: errors.New("file is not valid UTF-8")}
	}

	list := Parse(string(data))
	logger.Debug().Str("path", path).Int("count", len(list)).Msg("names loaded")
	return list, nil
}

// Parse splits text into names. Any of \n, \r\n or \r ends a line; lines are
// trimmed and blank ones dropped.
func Parse(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	list := []string{}
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		list = append(list, name)
	}
	return list
}
