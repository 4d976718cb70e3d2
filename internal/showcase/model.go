// Package showcase is an interactive terminal browser for the component catalog.
package showcase

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/pagination"
	"github.com/alexisbeaulieu97/atomic/internal/preview"
	"github.com/alexisbeaulieu97/atomic/internal/theme"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// DefaultPageSize is the number of components listed per page.
const DefaultPageSize = 6

// Options configures a Model.
type Options struct {
	PageSize   int
	MaxVisible int
	Unicode    bool
}

// Model is the showcase state.
type Model struct {
	entries []catalog.Entry
	cell    *theme.Cell

	renderer *preview.Renderer
	pager    *pagination.Paginator
	pageSize int
	unicode  bool

	viewMode  ViewMode
	cursor    int
	axis      int
	selection variant.Selection

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates a showcase over every entry of reg. The theme cell is
// shared with the caller; the showcase is its only writer while running.
func NewModel(reg *catalog.Registry, cell *theme.Cell, opts Options) Model {
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	maxVisible := opts.MaxVisible
	if maxVisible < 1 {
		maxVisible = pagination.DefaultMaxVisible
	}

	entries := reg.Entries()
	m := Model{
		entries:  entries,
		cell:     cell,
		pageSize: pageSize,
		unicode:  opts.Unicode,
		pager:    pagination.New(pageCount(len(entries), pageSize), pagination.WithMaxVisible(maxVisible)),
		keys:     defaultKeys(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.refreshRenderer()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func pageCount(n, size int) int {
	if n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Page returns the entries listed on the current page.
func (m Model) Page() []catalog.Entry {
	start := (m.pager.Current() - 1) * m.pageSize
	if start >= len(m.entries) {
		return nil
	}
	end := min(start+m.pageSize, len(m.entries))
	return m.entries[start:end]
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (catalog.Entry, bool) {
	page := m.Page()
	if m.cursor < 0 || m.cursor >= len(page) {
		return catalog.Entry{}, false
	}
	return page[m.cursor], true
}

// Mode returns the current view.
func (m Model) Mode() ViewMode { return m.viewMode }

// Selection returns the axis values shown in the detail view.
func (m Model) Selection() variant.Selection {
	out := make(variant.Selection, len(m.selection))
	for k, v := range m.selection {
		out[k] = v
	}
	return out
}

func (m *Model) refreshRenderer() {
	m.renderer = preview.New(m.cell.Get(), preview.WithUnicode(m.unicode), preview.WithWidth(m.width/2))
}

func (m *Model) clampCursor() {
	if n := len(m.Page()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// openDetail seeds the selection with defaults, falling back to the first
// value of axes that have none.
func (m *Model) openDetail(entry catalog.Entry) {
	defaults := entry.Spec.Defaults()
	m.selection = make(variant.Selection, len(defaults))
	for _, axis := range entry.Spec.Axes() {
		if v, ok := defaults[axis.Name]; ok {
			m.selection[axis.Name] = v
		} else if len(axis.Values) > 0 {
			m.selection[axis.Name] = axis.Values[0].Name
		}
	}
	m.axis = 0
	m.viewMode = ViewDetail
}

// cycleValue moves the focused axis to the next (delta 1) or previous
// (delta -1) value, wrapping at the ends.
func (m *Model) cycleValue(entry catalog.Entry, delta int) {
	axes := entry.Spec.Axes()
	if len(axes) == 0 {
		return
	}
	axis := axes[m.axis]
	current := 0
	for i, v := range axis.Values {
		if v.Name == m.selection[axis.Name] {
			current = i
			break
		}
	}
	n := len(axis.Values)
	m.selection[axis.Name] = axis.Values[((current+delta)%n+n)%n].Name
}
