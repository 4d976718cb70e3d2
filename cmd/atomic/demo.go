package main

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/pagination"
	"github.com/alexisbeaulieu97/atomic/internal/preview"
	"github.com/alexisbeaulieu97/atomic/internal/selection"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

var errNoDemo = errors.New("component has no composite demo")

var demoTabs = []selection.Item{
	{ID: "overview", Label: "Overview"},
	{ID: "specs", Label: "Specs"},
	{ID: "reviews", Label: "Reviews", Disabled: true},
}

var demoSteps = []selection.Step{
	{ID: "cart", Label: "Cart", Completed: true},
	{ID: "shipping", Label: "Shipping"},
	{ID: "payment", Label: "Payment"},
	{ID: "gift", Label: "Gift wrap", Disabled: true},
}

var demoSections = []selection.Item{
	{ID: "shipping", Label: "Shipping"},
	{ID: "returns", Label: "Returns"},
	{ID: "warranty", Label: "Warranty", Disabled: true},
}

var demoBodies = map[string]string{
	"shipping": "Orders ship within two business days.",
	"returns":  "Returns are accepted for 30 days.",
	"warranty": "Covered for one year.",
}

// renderDemo draws the composite a component belongs to, using sel to pick
// the variant, size or orientation where the composite has one.
func renderDemo(r *preview.Renderer, name string, sel variant.Selection) (string, error) {
	switch name {
	case "tab":
		tabs, err := catalog.TabStrip(selection.NewTabs(demoTabs, "specs"),
			catalog.TabsVariant(sel["variant"]), catalog.Size(sel["size"]))
		if err != nil {
			return "", err
		}
		return r.TabStrip(tabs), nil

	case "step", "step-indicator":
		orientation := catalog.Orientation(sel["orientation"])
		track, err := catalog.StepperTrack(selection.NewStepper(demoSteps, 1),
			orientation, catalog.StepIndicator(sel["variant"]), false)
		if err != nil {
			return "", err
		}
		return r.StepperTrack(track, orientation == catalog.OrientationVertical), nil

	case "accordion":
		sections, err := catalog.AccordionSections(selection.NewAccordion(demoSections, false, "shipping"),
			catalog.AccordionVariant(sel["variant"]))
		if err != nil {
			return "", err
		}
		return r.Accordion(sections, func(id string) string { return demoBodies[id] }), nil

	case "page-item":
		p := pagination.New(10, pagination.WithCurrent(5))
		items, err := catalog.PaginationBar(p, catalog.Size(sel["size"]))
		if err != nil {
			return "", err
		}
		return r.PaginationBar(items), nil
	}
	return "", fmt.Errorf("%w: %s", errNoDemo, name)
}
