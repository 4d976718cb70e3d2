// Package preview approximates resolved class lists in a terminal with lipgloss.
package preview

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/pagination"
	"github.com/alexisbeaulieu97/atomic/internal/selection"
	"github.com/alexisbeaulieu97/atomic/internal/theme"
)

// Renderer draws components for one theme mode.
type Renderer struct {
	mode    theme.Mode
	palette Palette
	unicode bool
	width   int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithUnicode selects unicode glyphs for ellipses and navigation arrows.
func WithUnicode(enabled bool) Option {
	return func(r *Renderer) { r.unicode = enabled }
}

// WithWidth sets the width used for w-full elements. Zero disables it.
func WithWidth(width int) Option {
	return func(r *Renderer) { r.width = max(width, 0) }
}

// WithSystemDark overrides background detection for the System mode.
func WithSystemDark(dark bool) Option {
	return func(r *Renderer) { r.palette = NewPalette(r.mode.Effective(dark)) }
}

// New returns a renderer for mode. System follows the terminal background.
func New(mode theme.Mode, opts ...Option) *Renderer {
	if !mode.Valid() {
		mode = theme.Light
	}
	r := &Renderer{mode: mode, unicode: true}
	r.palette = NewPalette(mode.Effective(mode == theme.System && lipgloss.HasDarkBackground()))
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mode returns the configured mode.
func (r *Renderer) Mode() theme.Mode { return r.mode }

// Palette returns the palette in effect.
func (r *Renderer) Palette() Palette { return r.palette }

// Translate maps classes onto a style using the renderer's palette.
func (r *Renderer) Translate(classes []string) Result {
	res := Translate(r.palette, classes)
	if r.width > 0 && contains(classes, "w-full") {
		res.Style = res.Style.Width(r.width)
	}
	return res
}

// Swatch renders label styled by classes.
func (r *Renderer) Swatch(label string, classes []string) string {
	return r.Translate(classes).Style.Render(label)
}

// Ellipsis returns the glyph used for elided page runs.
func (r *Renderer) Ellipsis() string {
	if r.unicode {
		return "…"
	}
	return pagination.Ellipsis().String()
}

// PaginationBar renders the items of a pagination bar side by side.
func (r *Renderer) PaginationBar(items []catalog.PageItem) string {
	cells := make([]string, 0, len(items))
	for _, item := range items {
		text := item.Text
		switch item.Kind {
		case catalog.PageItemEllipsis:
			text = r.Ellipsis()
		case catalog.PageItemControl:
			if !r.unicode {
				text = asciiGlyph(text)
			}
		}

		style := r.Translate(item.Classes).Style
		if item.Disabled {
			style = style.Faint(true)
		}
		if item.Current {
			style = style.Bold(true)
		}
		cells = append(cells, style.Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// TabStrip renders tabs side by side.
func (r *Renderer) TabStrip(tabs []catalog.RenderedTab) string {
	cells := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		style := r.Translate(tab.Classes).Style
		if tab.Disabled {
			style = style.Faint(true)
		}
		cells = append(cells, style.Render(tab.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
}

// StepperTrack renders steps side by side, or stacked when vertical is set.
// Each step shows its marker followed by its label.
func (r *Renderer) StepperTrack(steps []catalog.RenderedStep, vertical bool) string {
	cells := make([]string, 0, 2*len(steps))
	for _, step := range steps {
		marker := r.Translate(step.Indicator).Style.Render(stepGlyph(step, r.unicode))
		label := r.Translate(step.Text).Style.Render(step.Label)
		row := r.Translate(step.Classes).Style
		if step.State == selection.StepPending || step.State == selection.StepDisabled {
			row = row.Faint(true)
		}
		cells = append(cells, row.Render(lipgloss.JoinHorizontal(lipgloss.Center, marker, " ", label)))

		if len(step.Connector) > 0 {
			connector := "──"
			if vertical {
				connector = "│"
			}
			if !r.unicode {
				connector = "--"
				if vertical {
					connector = "|"
				}
			}
			cells = append(cells, r.Translate(step.Connector).Style.Render(connector))
		}
	}
	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, cells...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func stepGlyph(step catalog.RenderedStep, unicode bool) string {
	switch step.State {
	case selection.StepCompleted:
		if unicode {
			return "✓"
		}
		return "x"
	case selection.StepActive:
		return strconv.Itoa(step.Number)
	default:
		if unicode {
			return "○"
		}
		return "o"
	}
}

// Accordion renders sections stacked, with the panel body under open ones.
// body supplies the text shown for a section ID.
func (r *Renderer) Accordion(sections []catalog.RenderedSection, body func(id string) string) string {
	blocks := make([]string, 0, len(sections))
	for _, section := range sections {
		chevron := "▸"
		if section.Open {
			chevron = "▾"
		}
		if !r.unicode {
			chevron = ">"
			if section.Open {
				chevron = "v"
			}
		}

		trigger := r.Translate(section.Trigger).Style
		if section.Disabled {
			trigger = trigger.Faint(true)
		}
		lines := []string{trigger.Render(chevron + " " + section.Label)}
		if section.Open && body != nil {
			lines = append(lines, r.Translate(section.Panel).Style.Render(body(section.ID)))
		}
		blocks = append(blocks, r.Translate(section.Item).Style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// PageTokens renders a bare token sequence such as "1 … 4 5 6 … 10".
func (r *Renderer) PageTokens(tokens []pagination.PageToken) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok.IsEllipsis() {
			parts[i] = r.Ellipsis()
		} else {
			parts[i] = tok.String()
		}
	}
	return strings.Join(parts, " ")
}

// SupportsUnicode reports whether w is a terminal, where unicode glyphs are
// assumed to render.
func SupportsUnicode(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func asciiGlyph(glyph string) string {
	switch glyph {
	case "«":
		return "<<"
	case "‹":
		return "<"
	case "›":
		return ">"
	case "»":
		return ">>"
	}
	return glyph
}

func contains(tokens []string, want string) bool {
	for _, tok := range tokens {
		if tok == want {
			return true
		}
	}
	return false
}
