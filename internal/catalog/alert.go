package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// AlertVariant is the semantic tone of an alert.
type AlertVariant string

const (
	AlertSuccess AlertVariant = "success"
	AlertDanger  AlertVariant = "danger"
	AlertWarning AlertVariant = "warning"
	AlertInfo    AlertVariant = "info"
	AlertPrimary AlertVariant = "primary"
)

// Icon names the glyph shown in front of the alert message.
func (v AlertVariant) Icon() string {
	switch v {
	case AlertSuccess:
		return "CheckCircle"
	case AlertDanger:
		return "AlertCircle"
	case AlertWarning:
		return "AlertTriangle"
	default:
		return "Info"
	}
}

var AlertSpec = variant.NewBuilder().
	Base("rounded-lg border flex items-start gap-sm transition-all relative").
	Axis("variant",
		variant.V(string(AlertSuccess), "bg-success-50 border-success-200 text-success-900"),
		variant.V(string(AlertDanger), "bg-danger-50 border-danger-200 text-danger-900"),
		variant.V(string(AlertWarning), "bg-warning-50 border-warning-200 text-warning-900"),
		variant.V(string(AlertInfo), "bg-info-50 border-info-200 text-info-900"),
		variant.V(string(AlertPrimary), "bg-primary-50 border-primary-200 text-primary-900"),
	).
	Axis("size",
		variant.V(string(SizeSmall), "p-sm text-sm"),
		variant.V(string(SizeMedium), "p-md text-base"),
		variant.V(string(SizeLarge), "p-lg text-lg"),
	).
	Default("variant", string(AlertInfo)).
	Default("size", string(SizeMedium)).
	MustBuild()

// AlertProps selects an alert's appearance.
type AlertProps struct {
	Variant     AlertVariant
	Size        Size
	Dismissible bool
	Class       []string
}

func (p AlertProps) Selection() variant.Selection {
	return axisSelection("variant", string(p.Variant), "size", string(p.Size))
}

// Classes resolves the alert container classes. Dismissible alerts reserve
// room for the close button.
func (p AlertProps) Classes() (variant.ClassList, error) {
	var extra []string
	if p.Dismissible {
		extra = append(extra, "pr-xl")
	}
	extra = append(extra, p.Class...)
	return variant.Resolve(AlertSpec, p.Selection(), extra...)
}
