// Package search filters a name list by substring and describes what a
// results view should show for a query.
package search

import "strings"

// State is the display state implied by a query.
type State int

const (
	// Idle means the query is empty and the view stays blank.
	Idle State = iota
	// Searching is the moment between a query change and its result. The
	// filter is synchronous, so Evaluate never returns it.
	Searching
	// Shown means the query is non-empty and Matches is final.
	Shown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Shown:
		return "shown"
	default:
		return "unknown"
	}
}

// Result is the outcome of evaluating one query.
type Result struct {
	Query   string
	Matches []string
	State   State
}

// NoMatch reports whether a search ran and found nothing.
func (r Result) NoMatch() bool {
	return r.State == Shown && len(r.Matches) == 0
}

// Rows returns the lines a list view renders: nothing when idle, the
// placeholder when a search found nothing, otherwise the matches.
func (r Result) Rows(placeholder string) []string {
	switch {
	case r.State != Shown:
		return nil
	case len(r.Matches) == 0:
		return []string{placeholder}
	default:
		return r.Matches
	}
}

// Filter returns, in order, every name that contains query. The comparison
// is byte-wise: no case folding or normalization. An empty query matches
// nothing. names is not modified.
func Filter(names []string, query string) []string {
	found := []string{}
	if query == "" {
		return found
	}
	for _, name := range names {
		if strings.Contains(name, query) {
			found = append(found, name)
		}
	}
	return found
}

// Evaluate trims surrounding whitespace from raw and filters names with it.
// Every trigger (keystroke, Enter, button) goes through here.
func Evaluate(names []string, raw string) Result {
	query := strings.TrimSpace(raw)
	if query == "" {
		return Result{Query: query, Matches: []string{}, State: Idle}
	}
	return Result{Query: query, Matches: Filter(names, query), State: Shown}
}
