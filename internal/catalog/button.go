package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// ButtonVariant is the colour treatment of a button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonSuccess   ButtonVariant = "success"
	ButtonDanger    ButtonVariant = "danger"
	ButtonWarning   ButtonVariant = "warning"
	ButtonInfo      ButtonVariant = "info"
	ButtonLight     ButtonVariant = "light"
	ButtonDark      ButtonVariant = "dark"
	ButtonLink      ButtonVariant = "link"
)

// ButtonSpec is the variant definition shared by every button.
var ButtonSpec = variant.NewBuilder().
	Base("inline-flex items-center justify-center gap-sm relative isolate px-lg py-md border border-transparent rounded-md font-base font-medium leading-tight whitespace-nowrap cursor-pointer select-none outline-none transition-colors min-w-[44px] min-h-[44px] focus-visible:outline-2 focus-visible:outline-border-focus disabled:opacity-50 disabled:cursor-not-allowed").
	Axis("variant",
		variant.V(string(ButtonPrimary), "bg-primary text-text-on-primary hover:not-disabled:bg-primary-600 active:not-disabled:bg-primary-700"),
		variant.V(string(ButtonSecondary), "bg-secondary text-text-on-secondary hover:not-disabled:bg-secondary-600 active:not-disabled:bg-secondary-700"),
		variant.V(string(ButtonSuccess), "bg-success text-text-on-success hover:not-disabled:bg-success-600 active:not-disabled:bg-success-700"),
		variant.V(string(ButtonDanger), "bg-danger text-text-on-danger hover:not-disabled:bg-danger-600 active:not-disabled:bg-danger-700"),
		variant.V(string(ButtonWarning), "bg-warning text-text-on-warning hover:not-disabled:bg-warning-600 active:not-disabled:bg-warning-700"),
		variant.V(string(ButtonInfo), "bg-info text-text-on-info hover:not-disabled:bg-info-600 active:not-disabled:bg-info-700"),
		variant.V(string(ButtonLight), "bg-gray-100 text-text-primary border-border-primary hover:not-disabled:bg-gray-200"),
		variant.V(string(ButtonDark), "bg-gray-800 text-text-on-primary hover:not-disabled:bg-gray-700"),
		variant.V(string(ButtonLink), "bg-transparent text-primary border-transparent font-normal p-0 min-w-auto min-h-auto hover:not-disabled:underline"),
	).
	Axis("size",
		variant.V(string(SizeSmall), "px-md py-sm text-sm min-h-8 gap-xs"),
		variant.V(string(SizeMedium), "px-lg py-md text-base min-h-[44px]"),
		variant.V(string(SizeLarge), "px-xl py-lg text-lg min-h-12"),
	).
	Default("variant", string(ButtonPrimary)).
	Default("size", string(SizeMedium)).
	MustBuild()

// ButtonProps selects a button's appearance.
type ButtonProps struct {
	Variant   ButtonVariant
	Size      Size
	FullWidth bool
	Loading   bool
	Class     []string
}

// Selection returns the explicit axis values of p.
func (p ButtonProps) Selection() variant.Selection {
	return axisSelection("variant", string(p.Variant), "size", string(p.Size))
}

// Classes resolves the button's class list. Width and loading modifiers come
// after the variant classes and before caller classes.
func (p ButtonProps) Classes() (variant.ClassList, error) {
	var extra []string
	if p.FullWidth {
		extra = append(extra, "w-full", "flex")
	}
	if p.Loading {
		extra = append(extra, "relative", "text-transparent", "pointer-events-none")
	}
	extra = append(extra, p.Class...)
	return variant.Resolve(ButtonSpec, p.Selection(), extra...)
}
