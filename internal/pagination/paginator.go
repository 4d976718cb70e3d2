package pagination

// ControlKind identifies a navigation button around the page numbers.
type ControlKind int

const (
	ControlFirst ControlKind = iota
	ControlPrev
	ControlNext
	ControlLast
)

// Label returns the accessible label for the control.
func (k ControlKind) Label() string {
	switch k {
	case ControlFirst:
		return "First page"
	case ControlPrev:
		return "Previous page"
	case ControlNext:
		return "Next page"
	case ControlLast:
		return "Last page"
	default:
		return ""
	}
}

// Control is a navigation button with the page it leads to.
type Control struct {
	Kind     ControlKind
	Target   int
	Disabled bool
}

// Option configures a Paginator.
type Option func(*Paginator)

// WithMaxVisible sets the page-number budget. Values below 1 are ignored.
func WithMaxVisible(n int) Option {
	return func(p *Paginator) {
		if n >= 1 {
			p.maxVisible = n
		}
	}
}

// WithFirstLast toggles the first/last page controls.
func WithFirstLast(show bool) Option {
	return func(p *Paginator) {
		p.showFirstLast = show
	}
}

// WithPrevNext toggles the previous/next page controls.
func WithPrevNext(show bool) Option {
	return func(p *Paginator) {
		p.showPrevNext = show
	}
}

// WithCurrent sets the initial page, clamped into range.
func WithCurrent(page int) Option {
	return func(p *Paginator) {
		p.current = page
	}
}

// Paginator holds the current page and keeps it inside [1, total]. It is the
// caller-side clamp that ComputePageRange relies on.
type Paginator struct {
	current       int
	total         int
	maxVisible    int
	showFirstLast bool
	showPrevNext  bool
}

// New creates a paginator over total pages starting at page 1.
func New(total int, opts ...Option) *Paginator {
	p := &Paginator{
		current:       1,
		total:         max(total, 1),
		maxVisible:    DefaultMaxVisible,
		showFirstLast: true,
		showPrevNext:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.current = clamp(p.current, 1, p.total)
	return p
}

// Current returns the selected page.
func (p *Paginator) Current() int { return p.current }

// Total returns the page count.
func (p *Paginator) Total() int { return p.total }

// MaxVisible returns the page-number budget.
func (p *Paginator) MaxVisible() int { return p.maxVisible }

// GoTo selects page, clamped into range, and returns the resulting page.
func (p *Paginator) GoTo(page int) int {
	p.current = clamp(page, 1, p.total)
	return p.current
}

// Next advances one page unless already on the last page.
func (p *Paginator) Next() int { return p.GoTo(p.current + 1) }

// Prev goes back one page unless already on the first page.
func (p *Paginator) Prev() int { return p.GoTo(p.current - 1) }

// First jumps to page 1.
func (p *Paginator) First() int { return p.GoTo(1) }

// Last jumps to the final page.
func (p *Paginator) Last() int { return p.GoTo(p.total) }

// SetTotal changes the page count and re-clamps the current page.
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 1)
	p.current = clamp(p.current, 1, p.total)
}

// OnFirstPage reports whether the current page is the first one.
func (p *Paginator) OnFirstPage() bool { return p.current == 1 }

// OnLastPage reports whether the current page is the last one.
func (p *Paginator) OnLastPage() bool { return p.current == p.total }

// Pages returns the visible page tokens for the current state.
func (p *Paginator) Pages() []PageToken {
	return ComputePageRange(p.current, p.total, p.maxVisible)
}

// IsCurrent reports whether token is the selected page.
func (p *Paginator) IsCurrent(token PageToken) bool {
	return !token.Ellipsis && token.Page == p.current
}

// Leading returns the controls rendered before the page numbers.
func (p *Paginator) Leading() []Control {
	controls := make([]Control, 0, 2)
	if p.showFirstLast {
		controls = append(controls, Control{Kind: ControlFirst, Target: 1, Disabled: p.OnFirstPage()})
	}
	if p.showPrevNext {
		controls = append(controls, Control{Kind: ControlPrev, Target: max(p.current-1, 1), Disabled: p.OnFirstPage()})
	}
	return controls
}

// Trailing returns the controls rendered after the page numbers.
func (p *Paginator) Trailing() []Control {
	controls := make([]Control, 0, 2)
	if p.showPrevNext {
		controls = append(controls, Control{Kind: ControlNext, Target: min(p.current+1, p.total), Disabled: p.OnLastPage()})
	}
	if p.showFirstLast {
		controls = append(controls, Control{Kind: ControlLast, Target: p.total, Disabled: p.OnLastPage()})
	}
	return controls
}

// Activate applies a control and returns the resulting page. Disabled
// controls leave the page unchanged.
func (p *Paginator) Activate(c Control) int {
	if c.Disabled {
		return p.current
	}
	return p.GoTo(c.Target)
}
