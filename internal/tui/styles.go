package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/namefinder/namefinder/internal/theme"
)

// styles is the lipgloss rendition of a theme palette.
type styles struct {
	statusBar   lipgloss.Style
	label       lipgloss.Style
	inputPrompt lipgloss.Style
	separator   lipgloss.Style
	row         lipgloss.Style
	selected    lipgloss.Style
	noMatch     lipgloss.Style
	warning     lipgloss.Style
	notice      lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	primary := lipgloss.Color(p.Primary)
	secondary := lipgloss.Color(p.Secondary)
	accent := lipgloss.Color(p.Accent)

	return styles{
		statusBar: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(p.Bold).
			Padding(0, 1),
		label: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(p.Bold),
		inputPrompt: lipgloss.NewStyle().
			Foreground(primary),
		separator: lipgloss.NewStyle().
			Foreground(secondary),
		row: lipgloss.NewStyle().
			PaddingLeft(2),
		selected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			PaddingLeft(0),
		noMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.NoMatch)).
			Italic(true).
			PaddingLeft(2),
		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),
		notice: lipgloss.NewStyle().
			Foreground(accent).
			Italic(true),
	}
}
