package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// CardVariant is a card's surface treatment.
type CardVariant string

const (
	CardDefault  CardVariant = "default"
	CardElevated CardVariant = "elevated"
	CardOutlined CardVariant = "outlined"
	CardFilled   CardVariant = "filled"
)

// Padding is the inner spacing of a container.
type Padding string

const (
	PaddingNone Padding = "none"
	PaddingSm   Padding = "sm"
	PaddingMd   Padding = "md"
	PaddingLg   Padding = "lg"
	PaddingXl   Padding = "xl"
)

var CardSpec = variant.NewBuilder().
	Base("flex flex-col w-full bg-background border border-border rounded-lg overflow-hidden transition-all").
	Axis("variant",
		variant.V(string(CardDefault), "shadow-sm"),
		variant.V(string(CardElevated), "shadow-lg border-transparent hover:shadow-xl"),
		variant.V(string(CardOutlined), "shadow-none hover:border-primary"),
		variant.V(string(CardFilled), "bg-background-secondary border-transparent hover:bg-background-tertiary"),
	).
	Axis("padding",
		variant.V(string(PaddingNone), "p-0"),
		variant.V(string(PaddingSm), "p-sm"),
		variant.V(string(PaddingMd), "p-md"),
		variant.V(string(PaddingLg), "p-lg"),
		variant.V(string(PaddingXl), "p-xl"),
	).
	Default("variant", string(CardDefault)).
	Default("padding", string(PaddingMd)).
	MustBuild()

const (
	cardHeaderClasses = "px-lg py-md border-b border-border bg-background-secondary"
	cardFooterClasses = "px-lg py-md border-t border-border bg-background-secondary"
)

// CardProps selects a card's appearance.
type CardProps struct {
	Variant CardVariant
	Padding Padding
	Class   []string
}

func (p CardProps) Selection() variant.Selection {
	return axisSelection("variant", string(p.Variant), "padding", string(p.Padding))
}

func (p CardProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(CardSpec, p.Selection(), p.Class...)
}

// CardSections holds the classes of a card and its optional regions.
type CardSections struct {
	Card    variant.ClassList
	Header  variant.ClassList
	Content variant.ClassList
	Footer  variant.ClassList
}

// Sections resolves the card and its regions. The content carries the card
// padding only when there is neither header nor footer; otherwise it uses p-md.
func (p CardProps) Sections(header, footer bool) (CardSections, error) {
	card, err := p.Classes()
	if err != nil {
		return CardSections{}, err
	}

	sections := CardSections{Card: card, Content: variant.ClassList{"flex-1"}}
	if header {
		sections.Header = variant.Tokens(cardHeaderClasses)
	}
	if footer {
		sections.Footer = variant.Tokens(cardFooterClasses)
	}

	padding := p.Padding
	if padding == "" {
		padding = PaddingMd
	}
	if header || footer {
		sections.Content = append(sections.Content, "p-md")
	} else if padding == PaddingNone {
		sections.Content = append(sections.Content, "p-0")
	} else {
		sections.Content = append(sections.Content, "p-"+string(padding))
	}
	return sections, nil
}
