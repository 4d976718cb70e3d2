package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// LinkVariant is the colour treatment of an anchor.
type LinkVariant string

const (
	LinkDefault   LinkVariant = "default"
	LinkPrimary   LinkVariant = "primary"
	LinkSecondary LinkVariant = "secondary"
	LinkSuccess   LinkVariant = "success"
	LinkDanger    LinkVariant = "danger"
	LinkMuted     LinkVariant = "muted"
)

var LinkSpec = variant.NewBuilder().
	Base("transition-colors cursor-pointer").
	Axis("variant",
		variant.V(string(LinkDefault), "text-primary hover:text-primary-700"),
		variant.V(string(LinkPrimary), "text-primary hover:text-primary-700"),
		variant.V(string(LinkSecondary), "text-foreground-secondary hover:text-foreground"),
		variant.V(string(LinkSuccess), "text-success hover:text-success-700"),
		variant.V(string(LinkDanger), "text-danger hover:text-danger-700"),
		variant.V(string(LinkMuted), "text-foreground-muted hover:text-foreground-secondary"),
	).
	Axis("size",
		variant.V(string(SizeSmall), "text-sm"),
		variant.V(string(SizeMedium), "text-base"),
		variant.V(string(SizeLarge), "text-lg"),
	).
	Flag("underline", "underline", "no-underline hover:underline").
	Default("variant", string(LinkDefault)).
	Default("size", string(SizeMedium)).
	Default("underline", "false").
	MustBuild()

// LinkProps selects an anchor's appearance.
type LinkProps struct {
	Variant   LinkVariant
	Size      Size
	Underline bool
	External  bool
	Class     []string
}

func (p LinkProps) Selection() variant.Selection {
	return axisSelection("variant", string(p.Variant), "size", string(p.Size), "underline", flag(p.Underline))
}

func (p LinkProps) Classes() (variant.ClassList, error) {
	var extra []string
	if p.External {
		extra = append(extra, "inline-flex", "items-center", "gap-xs")
	}
	extra = append(extra, p.Class...)
	return variant.Resolve(LinkSpec, p.Selection(), extra...)
}

// Rel returns the rel attribute for the anchor; external links open without
// leaking the opener.
func (p LinkProps) Rel() string {
	if p.External {
		return "noopener noreferrer"
	}
	return ""
}
