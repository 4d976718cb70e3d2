package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/atomic/internal/theme"
)

const paletteShadeCount = 10

// PaletteShades is a Tailwind-style colour scale ordered from shade 50 to 900.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a scale from up to ten colours, lightest first.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Shade returns the colour for a Tailwind shade number (50, 100, ... 900).
func (ps PaletteShades) Shade(n int) (lipgloss.Color, bool) {
	index := shadeIndex(n)
	if index < 0 {
		return "", false
	}
	return ps.colors[index], true
}

func shadeIndex(n int) int {
	if n == 50 {
		return 0
	}
	if n < 100 || n > 900 || n%100 != 0 {
		return -1
	}
	return n / 100
}

// Palette maps design-token colour names onto terminal colours for one mode.
type Palette struct {
	families map[string]PaletteShades
	surface  map[string]lipgloss.Color
	dark     bool
}

var (
	slate = NewPaletteShades(
		"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
		"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
	)
	blue = NewPaletteShades(
		"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
		"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
	)
	green = NewPaletteShades(
		"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
		"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
	)
	red = NewPaletteShades(
		"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
		"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
	)
	yellow = NewPaletteShades(
		"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
		"#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12",
	)
	purple = NewPaletteShades(
		"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc",
		"#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87",
	)
	cyan = NewPaletteShades(
		"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee",
		"#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63",
	)
)

// NewPalette returns the palette for mode. System must be resolved with
// Mode.Effective before calling; it is treated as Light otherwise.
func NewPalette(mode theme.Mode) Palette {
	p := Palette{
		families: map[string]PaletteShades{
			"primary":   blue,
			"secondary": purple,
			"success":   green,
			"danger":    red,
			"warning":   yellow,
			"info":      cyan,
			"gray":      slate,
			"slate":     slate,
		},
		dark: mode == theme.Dark,
	}

	if p.dark {
		p.surface = map[string]lipgloss.Color{
			"background":           "#0f172a",
			"background-secondary": "#1e293b",
			"background-tertiary":  "#334155",
			"foreground":           "#f8fafc",
			"foreground-secondary": "#cbd5e1",
			"foreground-muted":     "#64748b",
			"text-primary":         "#f8fafc",
			"text-secondary":       "#cbd5e1",
			"text-muted":           "#64748b",
			"border":               "#334155",
			"border-primary":       "#475569",
			"border-secondary":     "#1e293b",
			"border-light":         "#1e293b",
			"border-focus":         "#60a5fa",
		}
	} else {
		p.surface = map[string]lipgloss.Color{
			"background":           "#ffffff",
			"background-secondary": "#f8fafc",
			"background-tertiary":  "#f1f5f9",
			"foreground":           "#0f172a",
			"foreground-secondary": "#475569",
			"foreground-muted":     "#94a3b8",
			"text-primary":         "#0f172a",
			"text-secondary":       "#475569",
			"text-muted":           "#94a3b8",
			"border":               "#e2e8f0",
			"border-primary":       "#cbd5e1",
			"border-secondary":     "#f1f5f9",
			"border-light":         "#f1f5f9",
			"border-focus":         "#3b82f6",
		}
	}
	p.surface["white"] = "#ffffff"
	p.surface["black"] = "#000000"
	return p
}

// Dark reports whether the palette is for a dark background.
func (p Palette) Dark() bool { return p.dark }

// Color resolves a colour token such as "primary", "primary-600",
// "background-secondary" or "text-on-primary". Shade numbers are mirrored on
// dark palettes so tints stay dark and text stays light.
func (p Palette) Color(name string) (lipgloss.Color, bool) {
	if c, ok := p.surface[name]; ok {
		return c, true
	}

	if on, ok := strings.CutPrefix(name, "text-on-"); ok {
		return p.onColor(on)
	}
	if family, ok := strings.CutSuffix(name, "-foreground"); ok {
		return p.onColor(family)
	}

	family, shade := name, 500
	if i := strings.LastIndexByte(name, '-'); i > 0 {
		if n, err := strconv.Atoi(name[i+1:]); err == nil {
			family, shade = name[:i], n
		}
	}
	shades, ok := p.families[family]
	if !ok {
		return "", false
	}
	if p.dark && shade != 500 {
		shade = mirrorShade(shade)
	}
	return shades.Shade(shade)
}

// onColor returns the text colour that reads on a solid family background.
func (p Palette) onColor(family string) (lipgloss.Color, bool) {
	if _, ok := p.families[family]; !ok {
		return "", false
	}
	if family == "warning" {
		return "#0f172a", true
	}
	return "#ffffff", true
}

func mirrorShade(n int) int {
	index := shadeIndex(n)
	if index < 0 {
		return n
	}
	mirrored := paletteShadeCount - 1 - index
	if mirrored == 0 {
		return 50
	}
	return mirrored * 100
}
