package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/pagination"
	"github.com/alexisbeaulieu97/atomic/internal/selection"
	"github.com/alexisbeaulieu97/atomic/internal/theme"
)

func TestPaletteColor(t *testing.T) {
	t.Parallel()

	light := NewPalette(theme.Light)
	dark := NewPalette(theme.Dark)

	cases := []struct {
		name  string
		p     Palette
		token string
		want  lipgloss.Color
		ok    bool
	}{
		{"family base shade", light, "primary", "#3b82f6", true},
		{"explicit shade", light, "danger-700", "#b91c1c", true},
		{"shade 50", light, "info-50", "#ecfeff", true},
		{"dark mirrors tints", dark, "info-50", "#164e63", true},
		{"dark keeps base shade", dark, "primary", "#3b82f6", true},
		{"surface token", light, "background-secondary", "#f8fafc", true},
		{"dark surface", dark, "background", "#0f172a", true},
		{"on colour", light, "text-on-primary", "#ffffff", true},
		{"warning on colour is dark", light, "text-on-warning", "#0f172a", true},
		{"family foreground", light, "success-foreground", "#ffffff", true},
		{"unknown family", light, "chartreuse", "", false},
		{"invalid shade", light, "primary-550", "", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tc.p.Color(tc.token)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	p := NewPalette(theme.Light)
	res := Translate(p, []string{
		"bg-primary", "text-text-on-primary", "font-semibold", "px-lg", "py-md",
		"hover:not-disabled:bg-primary-600", "text-base", "inline-flex", "min-h-[44px]",
	})

	assert.Equal(t, lipgloss.Color("#3b82f6"), res.Style.GetBackground())
	assert.Equal(t, lipgloss.Color("#ffffff"), res.Style.GetForeground())
	assert.True(t, res.Style.GetBold())
	assert.Equal(t, 3, res.Style.GetPaddingLeft())
	assert.Equal(t, 3, res.Style.GetPaddingRight())
	assert.Equal(t, 0, res.Style.GetPaddingTop())

	assert.Equal(t, []string{"bg-primary", "text-text-on-primary", "font-semibold", "px-lg", "py-md"}, res.Applied)
	assert.Equal(t, []string{"hover:not-disabled:bg-primary-600", "text-base", "inline-flex", "min-h-[44px]"}, res.Ignored)
}

func TestTranslateBorders(t *testing.T) {
	t.Parallel()

	p := NewPalette(theme.Light)

	res := Translate(p, []string{"rounded-md", "border", "border-danger"})
	assert.Equal(t, lipgloss.RoundedBorder(), res.Style.GetBorderStyle())
	assert.Equal(t, lipgloss.Color("#ef4444"), res.Style.GetBorderTopForeground())

	res = Translate(p, []string{"border-2"})
	assert.Equal(t, lipgloss.ThickBorder(), res.Style.GetBorderStyle())
	assert.Equal(t, lipgloss.Color("#e2e8f0"), res.Style.GetBorderTopForeground())

	res = Translate(p, []string{"border-b-2", "border-primary"})
	assert.True(t, res.Style.GetBorderBottom())
	assert.False(t, res.Style.GetBorderTop())

	res = Translate(p, []string{"border", "border-0"})
	assert.False(t, res.Style.GetBorderTop())
}

func TestHasStatePrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, hasStatePrefix("focus:ring-2"))
	assert.True(t, hasStatePrefix("data-[state=open]:bg-primary"))
	assert.False(t, hasStatePrefix("bg-[url(a:b)]"))
	assert.False(t, hasStatePrefix("bg-primary"))
}

func TestRendererWidthForFullWidth(t *testing.T) {
	t.Parallel()

	r := New(theme.Light, WithWidth(30))
	res := r.Translate([]string{"w-full", "bg-primary"})
	assert.Equal(t, 30, res.Style.GetWidth())

	res = New(theme.Light).Translate([]string{"w-full"})
	assert.Equal(t, 0, res.Style.GetWidth())
}

func TestRendererSystemMode(t *testing.T) {
	t.Parallel()

	r := New(theme.System, WithSystemDark(true))
	assert.Equal(t, theme.System, r.Mode())
	assert.True(t, r.Palette().Dark())

	r = New(theme.System, WithSystemDark(false))
	assert.False(t, r.Palette().Dark())

	assert.Equal(t, theme.Light, New(theme.Mode("sepia")).Mode())
}

func TestPaginationBarGlyphs(t *testing.T) {
	t.Parallel()

	items, err := catalog.PaginationBar(pagination.New(10, pagination.WithCurrent(5)), catalog.SizeSmall)
	require.NoError(t, err)

	unicode := New(theme.Light, WithUnicode(true)).PaginationBar(items)
	assert.Contains(t, unicode, "…")
	assert.Contains(t, unicode, "«")
	assert.Contains(t, unicode, "10")

	ascii := New(theme.Light, WithUnicode(false)).PaginationBar(items)
	assert.Contains(t, ascii, "...")
	assert.Contains(t, ascii, "<<")
	assert.NotContains(t, ascii, "…")
	assert.NotContains(t, ascii, "»")
}

func TestPageTokens(t *testing.T) {
	t.Parallel()

	tokens := pagination.ComputePageRange(5, 10, 5)
	assert.Equal(t, "1 … 4 5 6 … 10", New(theme.Dark).PageTokens(tokens))
	assert.Equal(t, "1 ... 4 5 6 ... 10", New(theme.Dark, WithUnicode(false)).PageTokens(tokens))
}

func TestTabStripRendersLabels(t *testing.T) {
	t.Parallel()

	tabs, err := catalog.TabStrip(selectionFixture(), catalog.TabsPills, catalog.SizeMedium)
	require.NoError(t, err)

	out := New(theme.Light).TabStrip(tabs)
	for _, label := range []string{"Overview", "Usage", "API"} {
		assert.Contains(t, out, label)
	}
}

func selectionFixture() *selection.Tabs {
	return selection.NewTabs([]selection.Item{
		{ID: "overview", Label: "Overview"},
		{ID: "usage", Label: "Usage"},
		{ID: "api", Label: "API", Disabled: true},
	}, "usage")
}

func TestSwatchContainsLabel(t *testing.T) {
	t.Parallel()

	classes, err := catalog.BadgeProps{Variant: catalog.BadgeSuccess, Pill: true}.Classes()
	require.NoError(t, err)

	out := New(theme.Light).Swatch("Shipped", classes)
	assert.Equal(t, 1, strings.Count(out, "Shipped"))
}

func TestSupportsUnicodeFalseForBuffers(t *testing.T) {
	t.Parallel()

	assert.False(t, SupportsUnicode(&bytes.Buffer{}))
}

func TestStepperTrackRendersEveryStep(t *testing.T) {
	t.Parallel()

	stepper := selection.NewStepper([]selection.Step{
		{ID: "cart", Label: "Cart"},
		{ID: "ship", Label: "Shipping"},
		{ID: "pay", Label: "Payment"},
	}, 1)
	track, err := catalog.StepperTrack(stepper, catalog.OrientationHorizontal, catalog.IndicatorNumbered, false)
	require.NoError(t, err)

	out := New(theme.Light, WithUnicode(false)).StepperTrack(track, false)
	for _, label := range []string{"Cart", "Shipping", "Payment", "--", "2"} {
		assert.Contains(t, out, label)
	}
	assert.NotContains(t, out, "✓")

	vertical := New(theme.Dark).StepperTrack(track, true)
	assert.Contains(t, vertical, "✓")
	assert.Contains(t, vertical, "│")
}

func TestAccordionShowsOpenBodies(t *testing.T) {
	t.Parallel()

	acc := selection.NewAccordion([]selection.Item{
		{ID: "shipping", Label: "Shipping"},
		{ID: "returns", Label: "Returns"},
	}, false, "shipping")
	sections, err := catalog.AccordionSections(acc, catalog.AccordionBordered)
	require.NoError(t, err)

	body := func(id string) string { return "body of " + id }
	out := New(theme.Light, WithUnicode(false)).Accordion(sections, body)
	assert.Contains(t, out, "v Shipping")
	assert.Contains(t, out, "> Returns")
	assert.Contains(t, out, "body of shipping")
	assert.NotContains(t, out, "body of returns")
}

func TestOpacityFullIsNotFaint(t *testing.T) {
	t.Parallel()

	p := NewPalette(theme.Light)
	assert.False(t, Translate(p, []string{"opacity-100"}).Style.GetFaint())
	assert.True(t, Translate(p, []string{"opacity-50"}).Style.GetFaint())
}
