package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/selection"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// TabsVariant is the visual style of a tab strip.
type TabsVariant string

const (
	TabsDefault   TabsVariant = "default"
	TabsPills     TabsVariant = "pills"
	TabsUnderline TabsVariant = "underline"
)

var TabSpec = variant.NewBuilder().
	Base("px-md py-sm text-sm font-medium rounded-md transition-all duration-200 cursor-pointer focus:outline-none focus:ring-2 focus:ring-primary focus:ring-offset-1").
	Axis("variant",
		variant.V(string(TabsDefault), ""),
		variant.V(string(TabsPills), "rounded-md"),
		variant.V(string(TabsUnderline), "border-b-2 border-transparent rounded-none"),
	).
	Axis("size",
		variant.V(string(SizeSmall), "px-sm py-xs text-xs"),
		variant.V(string(SizeMedium), "px-md py-sm text-sm"),
		variant.V(string(SizeLarge), "px-lg py-md text-base"),
	).
	Flag("active", "", "text-foreground-secondary").
	Flag("disabled", "opacity-50 cursor-not-allowed", "hover:text-foreground").
	Default("variant", string(TabsDefault)).
	Default("size", string(SizeMedium)).
	Default("active", "false").
	Default("disabled", "false").
	Compound(variant.Match{"variant": string(TabsDefault), "active": "true"}, "bg-primary-50 text-primary-700").
	Compound(variant.Match{"variant": string(TabsPills), "active": "true"}, "bg-background text-primary shadow-sm").
	Compound(variant.Match{"variant": string(TabsUnderline), "active": "true"}, "border-primary text-primary").
	Compound(variant.Match{"variant": string(TabsDefault), "active": "false", "disabled": "false"}, "hover:bg-background-secondary").
	Compound(variant.Match{"variant": string(TabsPills), "active": "false", "disabled": "false"}, "hover:bg-background-tertiary").
	Compound(variant.Match{"variant": string(TabsUnderline), "active": "false", "disabled": "false"}, "hover:border-border").
	MustBuild()

// TabProps selects the appearance of a single tab button.
type TabProps struct {
	Variant  TabsVariant
	Size     Size
	Active   bool
	Disabled bool
	Class    []string
}

func (p TabProps) Selection() variant.Selection {
	return axisSelection(
		"variant", string(p.Variant),
		"size", string(p.Size),
		"active", flag(p.Active),
		"disabled", flag(p.Disabled),
	)
}

func (p TabProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(TabSpec, p.Selection(), p.Class...)
}

// RenderedTab is a tab button ready for markup.
type RenderedTab struct {
	ID       string
	Label    string
	Active   bool
	Disabled bool
	Classes  variant.ClassList
}

// TabStrip resolves classes for every tab of tabs in order.
func TabStrip(tabs *selection.Tabs, style TabsVariant, size Size) ([]RenderedTab, error) {
	items := tabs.Items()
	out := make([]RenderedTab, 0, len(items))
	for _, item := range items {
		active := tabs.IsActive(item.ID)
		classes, err := TabProps{Variant: style, Size: size, Active: active, Disabled: item.Disabled}.Classes()
		if err != nil {
			return nil, err
		}
		out = append(out, RenderedTab{
			ID:       item.ID,
			Label:    item.Label,
			Active:   active,
			Disabled: item.Disabled,
			Classes:  classes,
		})
	}
	return out, nil
}
