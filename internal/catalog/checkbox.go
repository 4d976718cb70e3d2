package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

var CheckboxSpec = variant.NewBuilder().
	Base("appearance-none bg-background border-2 border-border rounded-sm cursor-pointer transition-all focus:outline-none focus:shadow-focus").
	Axis("size",
		variant.V(string(SizeSmall), "w-4 h-4"),
		variant.V(string(SizeMedium), "w-5 h-5"),
		variant.V(string(SizeLarge), "w-6 h-6"),
	).
	Flag("checked", "bg-primary border-primary", "").
	Flag("disabled", "bg-background-secondary border-border-secondary cursor-not-allowed opacity-65", "").
	Flag("error", "border-danger focus:shadow-focus-danger", "").
	Default("size", string(SizeMedium)).
	Default("checked", "false").
	Default("disabled", "false").
	Default("error", "false").
	Compound(variant.Match{"checked": "true", "disabled": "true"}, "bg-foreground-muted border-foreground-muted").
	MustBuild()

// CheckboxProps selects a checkbox's appearance.
type CheckboxProps struct {
	Size     Size
	Checked  bool
	Disabled bool
	Error    bool
	Class    []string
}

func (p CheckboxProps) Selection() variant.Selection {
	return axisSelection(
		"size", string(p.Size),
		"checked", flag(p.Checked),
		"disabled", flag(p.Disabled),
		"error", flag(p.Error),
	)
}

func (p CheckboxProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(CheckboxSpec, p.Selection(), p.Class...)
}
