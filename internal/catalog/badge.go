package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// BadgeVariant is the colour treatment of a badge.
type BadgeVariant string

const (
	BadgePrimary   BadgeVariant = "primary"
	BadgeSecondary BadgeVariant = "secondary"
	BadgeSuccess   BadgeVariant = "success"
	BadgeDanger    BadgeVariant = "danger"
	BadgeWarning   BadgeVariant = "warning"
	BadgeInfo      BadgeVariant = "info"
	BadgeLight     BadgeVariant = "light"
	BadgeDark      BadgeVariant = "dark"
)

// BadgeShape selects square or pill corners.
type BadgeShape string

const (
	BadgeShapeDefault BadgeShape = "default"
	BadgeShapePill    BadgeShape = "pill"
)

var BadgeSpec = variant.NewBuilder().
	Base("inline-flex items-center justify-center gap-xs font-base font-semibold leading-none text-center whitespace-nowrap rounded-sm transition-all").
	Axis("variant",
		variant.V(string(BadgePrimary), "bg-primary text-primary-foreground shadow-sm"),
		variant.V(string(BadgeSecondary), "bg-secondary text-secondary-foreground shadow-sm"),
		variant.V(string(BadgeSuccess), "bg-success text-success-foreground shadow-sm"),
		variant.V(string(BadgeDanger), "bg-danger text-danger-foreground shadow-sm"),
		variant.V(string(BadgeWarning), "bg-warning text-warning-foreground shadow-sm"),
		variant.V(string(BadgeInfo), "bg-info text-info-foreground shadow-sm"),
		variant.V(string(BadgeLight), "bg-background-secondary text-foreground border border-border-light"),
		variant.V(string(BadgeDark), "bg-gray-800 text-primary-foreground shadow-sm"),
	).
	Axis("size",
		variant.V(string(SizeSmall), "px-sm py-xs text-xs min-h-5"),
		variant.V(string(SizeMedium), "px-md py-sm text-sm min-h-6"),
		variant.V(string(SizeLarge), "px-lg py-md text-base min-h-8"),
	).
	Axis("shape",
		variant.V(string(BadgeShapeDefault), "rounded-sm"),
		variant.V(string(BadgeShapePill), "rounded-full"),
	).
	Default("variant", string(BadgePrimary)).
	Default("size", string(SizeMedium)).
	Default("shape", string(BadgeShapeDefault)).
	MustBuild()

// BadgeProps selects a badge's appearance. Pill maps onto the shape axis.
type BadgeProps struct {
	Variant BadgeVariant
	Size    Size
	Pill    bool
	Class   []string
}

func (p BadgeProps) Selection() variant.Selection {
	shape := BadgeShapeDefault
	if p.Pill {
		shape = BadgeShapePill
	}
	return axisSelection("variant", string(p.Variant), "size", string(p.Size), "shape", string(shape))
}

func (p BadgeProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(BadgeSpec, p.Selection(), p.Class...)
}
