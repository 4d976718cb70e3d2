package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Result is the terminal approximation of a class list.
type Result struct {
	Style   lipgloss.Style
	Applied []string
	Ignored []string
}

type borderKind int

const (
	borderNone borderKind = iota
	borderNormal
	borderThick
	borderBottom
)

// translation accumulates token effects before the style is assembled, so
// token order does not matter for borders and rounding.
type translation struct {
	style       lipgloss.Style
	border      borderKind
	rounded     bool
	borderColor lipgloss.TerminalColor
}

var (
	paddingX = map[string]int{"0": 0, "xs": 1, "sm": 1, "md": 2, "lg": 3, "xl": 4}
	paddingY = map[string]int{"0": 0, "xs": 0, "sm": 0, "md": 0, "lg": 1, "xl": 1}

	textSizes = map[string]struct{}{
		"xs": {}, "sm": {}, "base": {}, "lg": {}, "xl": {}, "2xl": {}, "3xl": {}, "center": {}, "transparent": {},
	}
)

// Translate maps utility classes onto a lipgloss style. Tokens with a state
// prefix (hover:, focus:, disabled:) and layout-only tokens are reported as
// ignored; a terminal cell has no pointer or box model to express them.
func Translate(p Palette, classes []string) Result {
	t := translation{style: lipgloss.NewStyle()}
	var res Result

	for _, token := range classes {
		if t.apply(p, token) {
			res.Applied = append(res.Applied, token)
		} else {
			res.Ignored = append(res.Ignored, token)
		}
	}

	res.Style = t.finish(p)
	return res
}

func (t *translation) apply(p Palette, token string) bool {
	if hasStatePrefix(token) {
		return false
	}

	switch token {
	case "font-bold", "font-semibold":
		t.style = t.style.Bold(true)
		return true
	case "italic":
		t.style = t.style.Italic(true)
		return true
	case "underline":
		t.style = t.style.Underline(true)
		return true
	case "no-underline":
		t.style = t.style.Underline(false)
		return true
	case "line-through":
		t.style = t.style.Strikethrough(true)
		return true
	case "uppercase":
		t.style = t.style.Transform(strings.ToUpper)
		return true
	case "border":
		t.border = max(t.border, borderNormal)
		return true
	case "border-2":
		t.border = borderThick
		return true
	case "border-b-2":
		t.border = borderBottom
		return true
	case "border-0":
		t.border = borderNone
		return true
	case "border-transparent":
		t.borderColor = lipgloss.NoColor{}
		return true
	case "rounded-none":
		t.rounded = false
		return true
	}

	switch {
	case strings.HasPrefix(token, "opacity-"):
		if token != "opacity-100" {
			t.style = t.style.Faint(true)
		}
		return true
	case strings.HasPrefix(token, "rounded"):
		t.rounded = true
		return true
	case strings.HasPrefix(token, "bg-"):
		if token == "bg-transparent" {
			return true
		}
		if c, ok := p.Color(strings.TrimPrefix(token, "bg-")); ok {
			t.style = t.style.Background(c)
			return true
		}
	case strings.HasPrefix(token, "text-"):
		name := strings.TrimPrefix(token, "text-")
		if _, isSize := textSizes[name]; isSize {
			return false
		}
		if c, ok := p.Color(name); ok {
			t.style = t.style.Foreground(c)
			return true
		}
	case strings.HasPrefix(token, "border-"):
		if c, ok := p.Color(strings.TrimPrefix(token, "border-")); ok {
			t.borderColor = c
			return true
		}
	case strings.HasPrefix(token, "px-"):
		if n, ok := paddingX[strings.TrimPrefix(token, "px-")]; ok {
			t.style = t.style.PaddingLeft(n).PaddingRight(n)
			return true
		}
	case strings.HasPrefix(token, "py-"):
		if n, ok := paddingY[strings.TrimPrefix(token, "py-")]; ok {
			t.style = t.style.PaddingTop(n).PaddingBottom(n)
			return true
		}
	case strings.HasPrefix(token, "p-"):
		size := strings.TrimPrefix(token, "p-")
		x, okX := paddingX[size]
		y, okY := paddingY[size]
		if okX && okY {
			t.style = t.style.Padding(y, x)
			return true
		}
	}
	return false
}

func (t *translation) finish(p Palette) lipgloss.Style {
	style := t.style
	var border lipgloss.Border
	switch t.border {
	case borderNone:
		return style
	case borderThick:
		border = lipgloss.ThickBorder()
	default:
		border = lipgloss.NormalBorder()
	}
	if t.rounded && t.border != borderThick {
		border = lipgloss.RoundedBorder()
	}

	if t.border == borderBottom {
		style = style.Border(lipgloss.ThickBorder(), false, false, true, false)
	} else {
		style = style.Border(border)
	}

	color := t.borderColor
	if color == nil {
		if c, ok := p.Color("border"); ok {
			color = c
		}
	}
	if color != nil {
		style = style.BorderForeground(color)
	}
	return style
}

// hasStatePrefix reports whether token is scoped to an interaction state or
// breakpoint, e.g. "hover:bg-primary-600". Colons inside brackets do not count.
func hasStatePrefix(token string) bool {
	depth := 0
	for _, r := range token {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ':':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
