package catalog

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/atomic/internal/pagination"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// PageItemKind distinguishes the elements of a pagination bar.
type PageItemKind string

const (
	PageItemPage     PageItemKind = "page"
	PageItemControl  PageItemKind = "control"
	PageItemEllipsis PageItemKind = "ellipsis"
)

const focusRing = "focus:outline-none focus:ring-2 focus:ring-primary"

var PageItemSpec = variant.NewBuilder().
	Base("flex items-center justify-center").
	Axis("kind",
		variant.V(string(PageItemPage), "rounded-md border transition-colors "+focusRing),
		variant.V(string(PageItemControl), "rounded-md border border-border bg-background hover:bg-background-secondary disabled:opacity-50 disabled:cursor-not-allowed transition-colors "+focusRing),
		variant.V(string(PageItemEllipsis), "text-text-muted"),
	).
	Axis("size",
		variant.V(string(SizeSmall), "px-sm py-xs text-sm"),
		variant.V(string(SizeMedium), "px-md py-sm text-base"),
		variant.V(string(SizeLarge), "px-lg py-md text-lg"),
	).
	Flag("current", "", "").
	Default("kind", string(PageItemPage)).
	Default("size", string(SizeMedium)).
	Default("current", "false").
	Compound(variant.Match{"kind": string(PageItemPage), "current": "true"}, "border-primary bg-primary text-text-on-primary").
	Compound(variant.Match{"kind": string(PageItemPage), "current": "false"}, "border-border bg-background hover:bg-background-secondary text-text-primary").
	MustBuild()

// PageItemProps selects the appearance of one pagination element.
type PageItemProps struct {
	Kind    PageItemKind
	Size    Size
	Current bool
	Class   []string
}

func (p PageItemProps) Selection() variant.Selection {
	return axisSelection("kind", string(p.Kind), "size", string(p.Size), "current", flag(p.Current))
}

func (p PageItemProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(PageItemSpec, p.Selection(), p.Class...)
}

// PageItem is one rendered element of a pagination bar.
type PageItem struct {
	Kind      PageItemKind
	Text      string
	AriaLabel string
	Target    int
	Current   bool
	Disabled  bool
	Classes   variant.ClassList
}

// PaginationBar lays out the controls and page tokens of p in render order:
// leading controls, page numbers with ellipses, trailing controls.
func PaginationBar(p *pagination.Paginator, size Size) ([]PageItem, error) {
	tokens := p.Pages()
	leading := p.Leading()
	trailing := p.Trailing()

	items := make([]PageItem, 0, len(leading)+len(tokens)+len(trailing))
	for _, c := range leading {
		item, err := controlItem(c, size)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	for _, tok := range tokens {
		if tok.IsEllipsis() {
			classes, err := PageItemProps{Kind: PageItemEllipsis, Size: size}.Classes()
			if err != nil {
				return nil, err
			}
			items = append(items, PageItem{Kind: PageItemEllipsis, Text: tok.String(), Classes: classes})
			continue
		}

		current := p.IsCurrent(tok)
		classes, err := PageItemProps{Kind: PageItemPage, Size: size, Current: current}.Classes()
		if err != nil {
			return nil, err
		}
		items = append(items, PageItem{
			Kind:      PageItemPage,
			Text:      strconv.Itoa(tok.Page),
			AriaLabel: fmt.Sprintf("Page %d", tok.Page),
			Target:    tok.Page,
			Current:   current,
			Classes:   classes,
		})
	}

	for _, c := range trailing {
		item, err := controlItem(c, size)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func controlItem(c pagination.Control, size Size) (PageItem, error) {
	classes, err := PageItemProps{Kind: PageItemControl, Size: size}.Classes()
	if err != nil {
		return PageItem{}, err
	}
	return PageItem{
		Kind:      PageItemControl,
		Text:      controlGlyph(c.Kind),
		AriaLabel: c.Kind.Label(),
		Target:    c.Target,
		Disabled:  c.Disabled,
		Classes:   classes,
	}, nil
}

func controlGlyph(kind pagination.ControlKind) string {
	switch kind {
	case pagination.ControlFirst:
		return "«"
	case pagination.ControlPrev:
		return "‹"
	case pagination.ControlNext:
		return "›"
	case pagination.ControlLast:
		return "»"
	}
	return ""
}
