package catalog

import (
	"strings"

	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// ToastPosition anchors a toast to a viewport corner or edge.
type ToastPosition string

const (
	ToastTopLeft      ToastPosition = "top-left"
	ToastTopRight     ToastPosition = "top-right"
	ToastTopCenter    ToastPosition = "top-center"
	ToastBottomLeft   ToastPosition = "bottom-left"
	ToastBottomRight  ToastPosition = "bottom-right"
	ToastBottomCenter ToastPosition = "bottom-center"
)

// Top reports whether the toast enters from the top of the viewport.
func (p ToastPosition) Top() bool {
	return p == "" || strings.HasPrefix(string(p), "top")
}

var ToastSpec = variant.NewBuilder().
	Base("fixed z-toast rounded-lg border shadow-lg max-w-md w-full flex items-start gap-sm p-md transition-all").
	Axis("variant",
		variant.V(string(AlertSuccess), "bg-success-50 border-success-200 text-success-800"),
		variant.V(string(AlertDanger), "bg-danger-50 border-danger-200 text-danger-800"),
		variant.V(string(AlertWarning), "bg-warning-50 border-warning-200 text-warning-800"),
		variant.V(string(AlertInfo), "bg-info-50 border-info-200 text-info-800"),
		variant.V(string(AlertPrimary), "bg-primary-50 border-primary-200 text-primary-800"),
	).
	Axis("position",
		variant.V(string(ToastTopLeft), "top-md left-md"),
		variant.V(string(ToastTopRight), "top-md right-md"),
		variant.V(string(ToastTopCenter), "top-md left-1/2 transform -translate-x-1/2"),
		variant.V(string(ToastBottomLeft), "bottom-md left-md"),
		variant.V(string(ToastBottomRight), "bottom-md right-md"),
		variant.V(string(ToastBottomCenter), "bottom-md left-1/2 transform -translate-x-1/2"),
	).
	Default("variant", string(AlertInfo)).
	Default("position", string(ToastTopRight)).
	MustBuild()

// ToastProps selects a toast's appearance. Toasts share the alert tones.
type ToastProps struct {
	Variant  AlertVariant
	Position ToastPosition
	Class    []string
}

func (p ToastProps) Selection() variant.Selection {
	return axisSelection("variant", string(p.Variant), "position", string(p.Position))
}

func (p ToastProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(ToastSpec, p.Selection(), p.Class...)
}

// Icon names the glyph shown in front of the message.
func (p ToastProps) Icon() string {
	return p.Variant.Icon()
}
