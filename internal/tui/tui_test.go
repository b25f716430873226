package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/namefinder/namefinder/internal/i18n"
	"github.com/namefinder/namefinder/internal/names"
	"github.com/namefinder/namefinder/internal/search"
)

var sampleNames = []string{"Alice", "Alicia", "Bob", "Bobby"}

// newReady returns a model that has already received its window size.
func newReady(t *testing.T, opts Options) Model {
	t.Helper()
	i18n.Init("en")
	if opts.Names == nil {
		opts.Names = sampleNames
	}
	m := New(opts)
	newM, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return newM.(Model)
}

// typeText feeds runes to the model one key at a time, like a user typing.
func typeText(m Model, text string) Model {
	for _, r := range text {
		newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = newM.(Model)
	}
	return m
}

func press(m Model, k tea.KeyType) Model {
	newM, _ := m.Update(tea.KeyMsg{Type: k})
	return newM.(Model)
}

func TestInitialView(t *testing.T) {
	i18n.Init("en")
	m := New(Options{Names: sampleNames})

	view := m.View()
	if view != "Initializing..." {
		t.Errorf("initial view = %q, want Initializing...", view)
	}
}

func TestStartsIdle(t *testing.T) {
	m := newReady(t, Options{})

	if m.Result().State != search.Idle {
		t.Errorf("state = %s, want idle", m.Result().State)
	}
	view := m.View()
	if strings.Contains(view, "Alice") {
		t.Error("idle view should not list any names")
	}
	if strings.Contains(view, i18n.T("search.no_match")) {
		t.Error("idle view should not show the no-match row")
	}
}

func TestLiveSearch(t *testing.T) {
	m := newReady(t, Options{})
	m = typeText(m, "Ali")

	res := m.Result()
	if res.State != search.Shown {
		t.Fatalf("state = %s, want shown", res.State)
	}
	want := []string{"Alice", "Alicia"}
	if strings.Join(res.Matches, ",") != strings.Join(want, ",") {
		t.Errorf("matches = %v, want %v", res.Matches, want)
	}
	view := m.View()
	if !strings.Contains(view, "Alicia") || strings.Contains(view, "Bobby") {
		t.Errorf("view does not reflect matches:\n%s", view)
	}
}

func TestNoMatchShowsPlaceholder(t *testing.T) {
	m := newReady(t, Options{})
	m = typeText(m, "z")

	if !m.Result().NoMatch() {
		t.Fatal("expected a no-match result")
	}
	if !strings.Contains(m.View(), "No match found") {
		t.Error("view should show the no-match row")
	}
}

func TestClearingQueryReturnsToIdle(t *testing.T) {
	m := newReady(t, Options{})
	m = typeText(m, "z")
	m = press(m, tea.KeyBackspace)

	if m.Result().State != search.Idle {
		t.Errorf("state = %s, want idle after deleting the query", m.Result().State)
	}
	if strings.Contains(m.View(), "No match found") {
		t.Error("empty query should blank the view, not show no-match")
	}
}

func TestEscClearsQuery(t *testing.T) {
	m := newReady(t, Options{})
	m = typeText(m, "Bob")
	m = press(m, tea.KeyEsc)

	if m.input.Value() != "" {
		t.Errorf("input = %q, want empty", m.input.Value())
	}
	if m.Result().State != search.Idle {
		t.Errorf("state = %s, want idle", m.Result().State)
	}
}

func TestEnterGivesSameResultAsTyping(t *testing.T) {
	m := newReady(t, Options{})
	m = typeText(m, "Bo")
	live := m.Result()

	m = press(m, tea.KeyEnter)
	explicit := m.Result()

	if strings.Join(live.Matches, ",") != strings.Join(explicit.Matches, ",") {
		t.Errorf("enter gave %v, typing gave %v", explicit.Matches, live.Matches)
	}
	if live.State != explicit.State {
		t.Errorf("enter state %s, typing state %s", explicit.State, live.State)
	}
}

func TestQueryIsTrimmed(t *testing.T) {
	m := newReady(t, Options{})
	m = typeText(m, " Bob ")

	if got := m.Result().Query; got != "Bob" {
		t.Errorf("query = %q, want Bob", got)
	}
	if len(m.Result().Matches) != 2 {
		t.Errorf("matches = %v, want Bob and Bobby", m.Result().Matches)
	}
}

func TestCursorMovement(t *testing.T) {
	m := newReady(t, Options{})
	m = typeText(m, "Ali")

	if name, _ := m.Selected(); name != "Alice" {
		t.Errorf("selected = %q, want Alice", name)
	}
	m = press(m, tea.KeyDown)
	if name, _ := m.Selected(); name != "Alicia" {
		t.Errorf("selected = %q, want Alicia", name)
	}
	// Clamped at the end
	m = press(m, tea.KeyDown)
	if name, _ := m.Selected(); name != "Alicia" {
		t.Errorf("selected = %q, want Alicia (clamped)", name)
	}
	m = press(m, tea.KeyUp)
	m = press(m, tea.KeyUp)
	if name, _ := m.Selected(); name != "Alice" {
		t.Errorf("selected = %q, want Alice (clamped)", name)
	}
}

func TestCursorResetsOnNewQuery(t *testing.T) {
	m := newReady(t, Options{})
	m = typeText(m, "Ali")
	m = press(m, tea.KeyDown)
	m = typeText(m, "c")

	if name, _ := m.Selected(); name != "Alice" {
		t.Errorf("selected = %q, want Alice after refining query", name)
	}
}

func TestNoSelectionWithoutMatches(t *testing.T) {
	m := newReady(t, Options{})
	if _, ok := m.Selected(); ok {
		t.Error("idle model should have no selection")
	}
	m = typeText(m, "z")
	if _, ok := m.Selected(); ok {
		t.Error("no-match result should have no selection")
	}
}

func TestCopySelected(t *testing.T) {
	var copied string
	m := newReady(t, Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}})
	m = typeText(m, "Bob")
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyCtrlY)

	if copied != "Bobby" {
		t.Errorf("copied = %q, want Bobby", copied)
	}
	if !strings.Contains(m.View(), "Copied Bobby") {
		t.Error("view should confirm the copy")
	}
}

func TestCopyFailure(t *testing.T) {
	m := newReady(t, Options{Clipboard: func(string) error {
		return errors.New("no clipboard")
	}})
	m = typeText(m, "Bob")
	m = press(m, tea.KeyCtrlY)

	if !strings.Contains(m.notice, "no clipboard") {
		t.Errorf("notice = %q, want copy failure", m.notice)
	}
}

func TestRecoverableProblemShown(t *testing.T) {
	p := names.Describe(&names.ReadError{Path: "names.txt", Err: errors.New("bad bytes")}, "names.txt")
	m := newReady(t, Options{Names: []string{}, Problem: p})

	if !strings.Contains(m.View(), "bad bytes") {
		t.Error("view should show the read warning")
	}
	m = typeText(m, "a")
	if !m.Result().NoMatch() {
		t.Error("search over an empty list should report no match")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newReady(t, Options{})
	m = press(m, tea.KeyF1)
	if !m.showHelp {
		t.Fatal("f1 should open help")
	}
	// Typing does not reach the query while help is open
	m = typeText(m, "Ali")
	if m.input.Value() != "" {
		t.Errorf("input = %q, want empty while help is open", m.input.Value())
	}
	m = press(m, tea.KeyEsc)
	if m.showHelp {
		t.Error("esc should close help")
	}
}

func TestQuit(t *testing.T) {
	m := newReady(t, Options{})
	newM, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model := newM.(Model)

	if !model.quitting {
		t.Error("should be quitting after ctrl+c")
	}
	if cmd == nil {
		t.Error("ctrl+c should return tea.Quit")
	}
}

func TestLongNamesTruncated(t *testing.T) {
	long := strings.Repeat("x", 200)
	m := newReady(t, Options{Names: []string{long}})
	m = typeText(m, "x")

	if !strings.Contains(m.viewport.View(), "…") {
		t.Error("long names should be cut with an ellipsis")
	}
}

func TestLocalizedLabels(t *testing.T) {
	i18n.Init("zh-TW")
	t.Cleanup(func() { i18n.Init("en") })

	m := New(Options{Names: sampleNames})
	newM, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = newM.(Model)
	m = typeText(m, "z")

	if !strings.Contains(m.View(), "無此人") {
		t.Error("zh-TW view should show the localized no-match row")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Alice", 10, "Alice"},
		{"Alexandria", 5, "Alex…"},
		{"王小明王小明", 5, "王小…"},
		{"Bob", 0, "Bob"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
