// Package pagination computes the page-number window shown by a paginator.
package pagination

import "strconv"

// DefaultMaxVisible is the window budget used when none is configured.
const DefaultMaxVisible = 5

// PageToken is either a page number or an ellipsis marker.
type PageToken struct {
	Page     int
	Ellipsis bool
}

// Page returns a token for page n.
func Page(n int) PageToken {
	return PageToken{Page: n}
}

// Ellipsis returns the elided-run marker.
func Ellipsis() PageToken {
	return PageToken{Ellipsis: true}
}

// IsEllipsis reports whether the token marks an elided run of pages.
func (t PageToken) IsEllipsis() bool {
	return t.Ellipsis
}

// String renders page numbers as digits and the marker as "...".
func (t PageToken) String() string {
	if t.Ellipsis {
		return "..."
	}
	return strconv.Itoa(t.Page)
}

// ComputePageRange returns the tokens a paginator shows for current out of
// total pages with at most maxVisible page numbers.
//
// When every page fits, all pages are returned. Otherwise the first and last
// page shortcuts count against the budget: a contiguous run of
// max(1, maxVisible-2) pages is placed around current, slid inward at the
// edges, and ellipses mark gaps between the run and the shortcuts. For an even
// run width the extra page goes after current.
//
// Callers are expected to pass 1 <= current <= total and maxVisible >= 1.
// Out-of-range values are clamped rather than reported.
func ComputePageRange(current, total, maxVisible int) []PageToken {
	if total < 1 {
		return nil
	}
	if maxVisible < 1 {
		maxVisible = 1
	}
	current = clamp(current, 1, total)

	if total <= maxVisible {
		tokens := make([]PageToken, 0, total)
		for p := 1; p <= total; p++ {
			tokens = append(tokens, Page(p))
		}
		return tokens
	}

	width := max(1, maxVisible-2)
	left := (width - 1) / 2
	start := current - left
	end := start + width - 1

	if start < 1 {
		end += 1 - start
		start = 1
	}
	if end > total {
		start -= end - total
		end = total
	}
	start = max(start, 1)

	tokens := make([]PageToken, 0, width+4)
	if start > 1 {
		tokens = append(tokens, Page(1))
		if start > 2 {
			tokens = append(tokens, Ellipsis())
		}
	}
	for p := start; p <= end; p++ {
		tokens = append(tokens, Page(p))
	}
	if end < total {
		if end < total-1 {
			tokens = append(tokens, Ellipsis())
		}
		tokens = append(tokens, Page(total))
	}

	return tokens
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
