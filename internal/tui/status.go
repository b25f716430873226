package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the top bar: title and names file on the left, the
// match counter on the right.
func StatusBar(style lipgloss.Style, title, source, counter string, width int) string {
	left := " " + title
	if source != "" {
		left += " - " + source
	}
	right := counter + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - style.GetHorizontalPadding()
	if gap < 1 {
		gap = 1
	}
	return style.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
