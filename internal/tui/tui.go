package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/namefinder/namefinder/internal/i18n"
	"github.com/namefinder/namefinder/internal/logging"
	"github.com/namefinder/namefinder/internal/names"
	"github.com/namefinder/namefinder/internal/search"
	"github.com/namefinder/namefinder/internal/theme"
)

// Options configures the TUI.
type Options struct {
	Names   []string
	Source  string         // names file shown in the status bar
	Problem *names.Problem // recoverable load error, shown in the footer
	Palette theme.Palette

	// Clipboard receives copied names. Defaults to the system clipboard.
	Clipboard func(string) error
}

// chromeHeight is the number of lines around the results viewport:
// status bar, prompt, input, results label, separator, footer, help.
const chromeHeight = 7

// Model is the Bubble Tea model for the search screen.
type Model struct {
	options  Options
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	styles   styles
	logger   zerolog.Logger

	result search.Result
	cursor int
	notice string

	width    int
	height   int
	ready    bool
	quitting bool
	showHelp bool

	mdRenderer *glamour.TermRenderer
}

// New creates a new TUI model.
func New(opts Options) Model {
	if opts.Palette.Name == "" {
		opts.Palette, _ = theme.Lookup(theme.Default)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	st := newStyles(opts.Palette)

	ti := textinput.New()
	ti.Placeholder = i18n.T("search.placeholder")
	ti.Prompt = st.inputPrompt.Render("> ")
	ti.CharLimit = 256
	ti.Focus()

	vp := viewport.New(80, 20)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	return Model{
		options:    opts,
		input:      ti,
		viewport:   vp,
		help:       help.New(),
		keys:       newKeyMap(),
		styles:     st,
		logger:     logging.For("tui"),
		result:     search.Evaluate(opts.Names, ""),
		mdRenderer: renderer,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewH := m.height - chromeHeight
		if viewH < 1 {
			viewH = 1
		}
		m.viewport.Width = m.width
		m.viewport.Height = viewH
		m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 1
		m.help.Width = m.width
		m.ready = true
		m.updateViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.viewport.GotoTop()
		m.updateViewport()
		return m, nil
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Clear):
			m.showHelp = false
			m.updateViewport()
		case key.Matches(msg, m.keys.Up):
			m.viewport.SetYOffset(m.viewport.YOffset - 1)
		case key.Matches(msg, m.keys.Down):
			m.viewport.SetYOffset(m.viewport.YOffset + 1)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.evaluate()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		m.evaluate()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copySelected()
		return m, nil
	}

	// Everything else edits the query; re-run the search afterwards.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.evaluate()
	return m, cmd
}

// evaluate re-runs the filter on the current input. Both the live path and
// the Enter key land here.
func (m *Model) evaluate() {
	prev := m.result.Query
	m.result = search.Evaluate(m.options.Names, m.input.Value())
	if m.result.Query != prev {
		m.cursor = 0
		m.notice = ""
		m.viewport.GotoTop()
		m.logger.Debug().
			Str("query", m.result.Query).
			Int("matches", len(m.result.Matches)).
			Msg("search")
	}
	m.updateViewport()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.result.Matches)
	if n == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.updateViewport()
}

// Selected returns the highlighted match, if any.
func (m Model) Selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.result.Matches) {
		return "", false
	}
	return m.result.Matches[m.cursor], true
}

// Result returns the current search result.
func (m Model) Result() search.Result {
	return m.result
}

func (m *Model) copySelected() {
	name, ok := m.Selected()
	if !ok {
		return
	}
	if err := m.options.Clipboard(name); err != nil {
		m.logger.Warn().Err(err).Msg("clipboard write failed")
		m.notice = i18n.TData("status.copy_failed", map[string]any{"Error": err.Error()})
		return
	}
	m.notice = i18n.TData("status.copied", map[string]any{"Name": name})
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	status := StatusBar(m.styles.statusBar, i18n.T("app.title"), m.options.Source, m.counter(), m.width)
	separator := m.styles.separator.Render(strings.Repeat("─", m.width))

	return strings.Join([]string{
		status,
		m.styles.label.Render(i18n.T("search.prompt")),
		m.input.View(),
		m.styles.label.Render(i18n.T("search.results")),
		m.viewport.View(),
		separator,
		m.footer(),
		m.help.View(m.keys),
	}, "\n")
}

func (m Model) counter() string {
	total := len(m.options.Names)
	if m.result.State != search.Shown {
		return i18n.TData("search.idle", map[string]any{"Total": total})
	}
	return i18n.TData("search.count", map[string]any{
		"Count": len(m.result.Matches),
		"Total": total,
	})
}

func (m Model) footer() string {
	switch {
	case m.notice != "":
		return m.styles.notice.Render(truncate(m.notice, m.width))
	case m.options.Problem != nil:
		return m.styles.warning.Render(truncate(oneLine(m.options.Problem.Message), m.width))
	default:
		return ""
	}
}

func (m *Model) renderMarkdown(content string) string {
	if m.mdRenderer == nil {
		return content
	}
	rendered, err := m.mdRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

func (m *Model) updateViewport() {
	if m.showHelp {
		m.viewport.SetContent(m.renderMarkdown(i18n.T("help.body")))
		return
	}

	rows := m.result.Rows(i18n.T("search.no_match"))
	lines := make([]string, 0, len(rows))
	rowWidth := m.width - 2
	for i, row := range rows {
		switch {
		case m.result.NoMatch():
			lines = append(lines, m.styles.noMatch.Render(truncate(row, rowWidth)))
		case i == m.cursor:
			lines = append(lines, m.styles.selected.Render("› "+truncate(row, rowWidth)))
		default:
			lines = append(lines, m.styles.row.Render(truncate(row, rowWidth)))
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	// Keep the highlighted row on screen.
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if h := m.viewport.Height; h > 0 && m.cursor >= m.viewport.YOffset+h {
		m.viewport.SetYOffset(m.cursor - h + 1)
	}
}

// truncate shortens s to width terminal cells, ending in an ellipsis when
// it had to cut. Wide (CJK) characters count as two cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
