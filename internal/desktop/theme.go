package desktop

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"

	"github.com/namefinder/namefinder/internal/theme"
)

// paletteTheme recolors the default Fyne theme with a namefinder palette.
type paletteTheme struct {
	fyne.Theme
	palette theme.Palette
}

func newTheme(p theme.Palette) fyne.Theme {
	if p.Name == "" {
		p, _ = theme.Lookup(theme.Default)
	}
	return &paletteTheme{Theme: fynetheme.DefaultTheme(), palette: p}
}

func (t *paletteTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return theme.RGBA(t.palette.Primary)
	case fynetheme.ColorNameWarning:
		return theme.RGBA(t.palette.Warning)
	case fynetheme.ColorNameError:
		return theme.RGBA(t.palette.NoMatch)
	case fynetheme.ColorNameSuccess:
		return theme.RGBA(t.palette.Accent)
	}
	return t.Theme.Color(name, variant)
}

func (t *paletteTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.palette.Bold && !style.Monospace && !style.Symbol {
		style.Bold = true
	}
	return t.Theme.Font(style)
}
