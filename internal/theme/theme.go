// Package theme defines the color palettes shared by the terminal and
// desktop front ends.
package theme

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// Palette is a named set of colors, as "#RRGGBB" strings.
type Palette struct {
	Name      string
	Primary   string // prompt, title bar, highlighted row
	Secondary string // labels, separators, help text
	Accent    string // match counter, copy notice
	Warning   string // recoverable load errors
	NoMatch   string // the "no match" row
	Bold      bool   // bold labels and title
}

var palettes = map[string]Palette{
	"classic": {
		Name:      "classic",
		Primary:   "#2563EB",
		Secondary: "#6B7280",
		Accent:    "#059669",
		Warning:   "#D97706",
		NoMatch:   "#9CA3AF",
	},
	"vivid": {
		Name:      "vivid",
		Primary:   "#7C3AED",
		Secondary: "#A78BFA",
		Accent:    "#10B981",
		Warning:   "#F59E0B",
		NoMatch:   "#EF4444",
		Bold:      true,
	},
}

// Default is the palette used when none is configured.
const Default = "classic"

// Lookup returns the palette called name. Matching ignores case.
func Lookup(name string) (Palette, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = Default
	}
	p, ok := palettes[key]
	if !ok {
		return palettes[Default], fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the available palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RGBA parses a "#RRGGBB" color for toolkits that want image/color values.
// Invalid input yields opaque black.
func RGBA(hex string) color.NRGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.NRGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
