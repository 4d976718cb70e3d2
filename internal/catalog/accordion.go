package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/selection"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// AccordionVariant is the frame style of accordion sections.
type AccordionVariant string

const (
	AccordionDefault  AccordionVariant = "default"
	AccordionBordered AccordionVariant = "bordered"
)

// AccordionSpec styles one section: its frame, header button and panel.
// The part axis selects which element the classes are for.
var AccordionSpec = variant.NewBuilder().
	Axis("part",
		variant.V("item", "border-b border-border last:border-b-0"),
		variant.V("trigger", "w-full flex items-center justify-between p-md text-left transition-all hover:bg-background-secondary focus:outline-none focus:ring-2 focus:ring-primary focus:ring-inset"),
		variant.V("panel", "overflow-hidden transition-all duration-300"),
	).
	Axis("variant",
		variant.V(string(AccordionDefault), ""),
		variant.V(string(AccordionBordered), ""),
	).
	Flag("open", "", "").
	Flag("disabled", "", "").
	Default("part", "item").
	Default("variant", string(AccordionDefault)).
	Default("open", "false").
	Default("disabled", "false").
	Compound(variant.Match{"part": "item", "variant": string(AccordionBordered)}, "border border-border rounded-lg mb-sm last:mb-0").
	Compound(variant.Match{"part": "trigger", "variant": string(AccordionBordered)}, "rounded-t-lg").
	Compound(variant.Match{"part": "trigger", "disabled": "true"}, "opacity-50 cursor-not-allowed hover:bg-transparent").
	Compound(variant.Match{"part": "panel", "open": "true"}, "max-h-96 opacity-100").
	Compound(variant.Match{"part": "panel", "open": "false"}, "max-h-0 opacity-0").
	Compound(variant.Match{"part": "panel", "variant": string(AccordionBordered)}, "border-t border-border").
	MustBuild()

// AccordionPart names an element of an accordion section.
type AccordionPart string

const (
	AccordionItem    AccordionPart = "item"
	AccordionTrigger AccordionPart = "trigger"
	AccordionPanel   AccordionPart = "panel"
)

// AccordionProps selects the classes of one accordion element.
type AccordionProps struct {
	Part     AccordionPart
	Variant  AccordionVariant
	Open     bool
	Disabled bool
	Class    []string
}

func (p AccordionProps) Selection() variant.Selection {
	return axisSelection(
		"part", string(p.Part),
		"variant", string(p.Variant),
		"open", flag(p.Open),
		"disabled", flag(p.Disabled),
	)
}

func (p AccordionProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(AccordionSpec, p.Selection(), p.Class...)
}

// RenderedSection is an accordion section ready for markup.
type RenderedSection struct {
	ID       string
	Label    string
	Open     bool
	Disabled bool
	Item     variant.ClassList
	Trigger  variant.ClassList
	Panel    variant.ClassList
}

// AccordionSections resolves every section of a in order, using its open state.
func AccordionSections(a *selection.Accordion, style AccordionVariant) ([]RenderedSection, error) {
	items := a.Items()
	out := make([]RenderedSection, 0, len(items))
	for _, item := range items {
		props := AccordionProps{Variant: style, Open: a.IsOpen(item.ID), Disabled: item.Disabled}

		section := RenderedSection{ID: item.ID, Label: item.Label, Open: props.Open, Disabled: item.Disabled}
		for _, part := range []struct {
			part AccordionPart
			dst  *variant.ClassList
		}{
			{AccordionItem, &section.Item},
			{AccordionTrigger, &section.Trigger},
			{AccordionPanel, &section.Panel},
		} {
			props.Part = part.part
			classes, err := props.Classes()
			if err != nil {
				return nil, err
			}
			*part.dst = classes
		}
		out = append(out, section)
	}
	return out, nil
}
