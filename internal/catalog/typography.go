package catalog

import (
	"strconv"

	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// Tone is the text colour shared by headings and body text.
type Tone string

const (
	TonePrimary   Tone = "primary"
	ToneSecondary Tone = "secondary"
	ToneAccent    Tone = "accent"
	ToneMuted     Tone = "muted"
	ToneSuccess   Tone = "success"
	ToneWarning   Tone = "warning"
	ToneDanger    Tone = "danger"
	ToneInfo      Tone = "info"
)

// Align is horizontal text alignment.
type Align string

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

func alignValues() []variant.Value {
	return []variant.Value{
		variant.V(string(AlignLeft), "text-left"),
		variant.V(string(AlignCenter), "text-center"),
		variant.V(string(AlignRight), "text-right"),
		variant.V(string(AlignJustify), "text-justify"),
	}
}

// HeadingVariant sets a heading's weight.
type HeadingVariant string

const (
	HeadingDefault    HeadingVariant = "heading"
	HeadingDisplay    HeadingVariant = "display"
	HeadingSubheading HeadingVariant = "subheading"
)

var HeadingSpec = variant.NewBuilder().
	Base("font-heading leading-tight").
	Axis("level",
		variant.V("1", "text-4xl md:text-5xl lg:text-6xl"),
		variant.V("2", "text-3xl md:text-4xl lg:text-5xl"),
		variant.V("3", "text-2xl md:text-3xl lg:text-4xl"),
		variant.V("4", "text-xl md:text-2xl lg:text-3xl"),
		variant.V("5", "text-lg md:text-xl lg:text-2xl"),
		variant.V("6", "text-base md:text-lg lg:text-xl"),
	).
	Axis("variant",
		variant.V(string(HeadingDefault), "font-semibold"),
		variant.V(string(HeadingDisplay), "font-bold"),
		variant.V(string(HeadingSubheading), "font-medium"),
	).
	Axis("color",
		variant.V(string(TonePrimary), "text-text-primary"),
		variant.V(string(ToneSecondary), "text-text-secondary"),
		variant.V(string(ToneAccent), "text-text-accent"),
		variant.V(string(ToneMuted), "text-text-muted"),
		variant.V(string(ToneSuccess), "text-success-600"),
		variant.V(string(ToneWarning), "text-warning-600"),
		variant.V(string(ToneDanger), "text-danger-600"),
		variant.V(string(ToneInfo), "text-info-600"),
	).
	Axis("align", alignValues()...).
	Default("level", "1").
	Default("variant", string(HeadingDefault)).
	Default("color", string(TonePrimary)).
	Default("align", string(AlignLeft)).
	MustBuild()

// HeadingProps selects a heading's appearance. Level 0 means the default h1.
type HeadingProps struct {
	Level   int
	Variant HeadingVariant
	Color   Tone
	Align   Align
	Class   []string
}

func (p HeadingProps) Selection() variant.Selection {
	level := ""
	if p.Level != 0 {
		level = strconv.Itoa(p.Level)
	}
	return axisSelection(
		"level", level,
		"variant", string(p.Variant),
		"color", string(p.Color),
		"align", string(p.Align),
	)
}

func (p HeadingProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(HeadingSpec, p.Selection(), p.Class...)
}

// Tag returns the HTML element for the heading level.
func (p HeadingProps) Tag() string {
	if p.Level < 1 || p.Level > 6 {
		return "h1"
	}
	return "h" + strconv.Itoa(p.Level)
}

// TextVariant sets body text size.
type TextVariant string

const (
	TextBody    TextVariant = "body"
	TextCaption TextVariant = "caption"
	TextSmall   TextVariant = "small"
	TextLarge   TextVariant = "large"
	TextXL      TextVariant = "xl"
)

// Weight is a font weight.
type Weight string

const (
	WeightLight    Weight = "light"
	WeightNormal   Weight = "normal"
	WeightMedium   Weight = "medium"
	WeightSemibold Weight = "semibold"
	WeightBold     Weight = "bold"
)

var TextSpec = variant.NewBuilder().
	Base("font-base leading-normal").
	Axis("variant",
		variant.V(string(TextBody), "text-base"),
		variant.V(string(TextCaption), "text-sm"),
		variant.V(string(TextSmall), "text-sm"),
		variant.V(string(TextLarge), "text-lg"),
		variant.V(string(TextXL), "text-xl"),
	).
	Axis("color",
		variant.V(string(TonePrimary), "text-foreground"),
		variant.V(string(ToneSecondary), "text-foreground-secondary"),
		variant.V(string(ToneMuted), "text-foreground-muted"),
		variant.V(string(ToneAccent), "text-foreground-accent"),
		variant.V(string(ToneSuccess), "text-success"),
		variant.V(string(ToneDanger), "text-danger"),
		variant.V(string(ToneWarning), "text-warning"),
		variant.V(string(ToneInfo), "text-info"),
	).
	Axis("weight",
		variant.V(string(WeightLight), "font-light"),
		variant.V(string(WeightNormal), "font-normal"),
		variant.V(string(WeightMedium), "font-medium"),
		variant.V(string(WeightSemibold), "font-semibold"),
		variant.V(string(WeightBold), "font-bold"),
	).
	Axis("align", alignValues()...).
	Default("variant", string(TextBody)).
	Default("color", string(TonePrimary)).
	Default("weight", string(WeightNormal)).
	Default("align", string(AlignLeft)).
	MustBuild()

// TextProps selects body text appearance.
type TextProps struct {
	Variant TextVariant
	Color   Tone
	Weight  Weight
	Align   Align
	Class   []string
}

func (p TextProps) Selection() variant.Selection {
	return axisSelection(
		"variant", string(p.Variant),
		"color", string(p.Color),
		"weight", string(p.Weight),
		"align", string(p.Align),
	)
}

func (p TextProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(TextSpec, p.Selection(), p.Class...)
}
