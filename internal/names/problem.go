package names

import (
	"errors"

	"github.com/namefinder/namefinder/internal/i18n"
)

// Severity tells a presentation layer whether it can keep going after a
// load failure.
type Severity int

const (
	// SeverityWarning means the UI can continue with an empty name list.
	SeverityWarning Severity = iota
	// SeverityFatal means no usable search interface should be shown.
	SeverityFatal
)

func (s Severity) String() string {
	if s == SeverityFatal {
		return "fatal"
	}
	return "warning"
}

// Problem is a load error prepared for display.
type Problem struct {
	Title    string
	Message  string
	Severity Severity
	Err      error
}

// Fatal reports whether the problem should stop the application.
func (p Problem) Fatal() bool {
	return p.Severity == SeverityFatal
}

// Describe turns an error returned by Load into a localized Problem.
// Describe(nil, path) returns nil.
func Describe(err error, path string) *Problem {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return &Problem{
			Title:    i18n.T("load.not_found.title"),
			Message:  i18n.TData("load.not_found.message", map[string]any{"Path": path}),
			Severity: SeverityFatal,
			Err:      err,
		}
	}

	cause := err
	var readErr *ReadError
	if errors.As(err, &readErr) {
		cause = readErr.Err
	}
	return &Problem{
		Title:    i18n.T("load.read_error.title"),
		Message:  i18n.TData("load.read_error.message", map[string]any{"Path": path, "Error": cause.Error()}),
		Severity: SeverityWarning,
		Err:      err,
	}
}
