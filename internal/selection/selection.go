// Package selection tracks which item is active in tabs, accordions and steppers.
package selection

// Item is a selectable entry identified by ID.
type Item struct {
	ID       string
	Label    string
	Disabled bool
}

// Tabs keeps exactly one active tab when at least one item exists.
type Tabs struct {
	items  []Item
	active string
}

// NewTabs selects defaultID when it names an enabled item, otherwise the first
// enabled item, otherwise the first item.
func NewTabs(items []Item, defaultID string) *Tabs {
	t := &Tabs{items: append([]Item(nil), items...)}
	if item, ok := t.find(defaultID); ok && !item.Disabled {
		t.active = defaultID
		return t
	}
	for _, item := range t.items {
		if !item.Disabled {
			t.active = item.ID
			return t
		}
	}
	if len(t.items) > 0 {
		t.active = t.items[0].ID
	}
	return t
}

// Active returns the active tab ID, or "" when there are no tabs.
func (t *Tabs) Active() string { return t.active }

// Items returns a copy of the tabs in order.
func (t *Tabs) Items() []Item { return append([]Item(nil), t.items...) }

// Activate selects id. Unknown and disabled tabs are ignored; the return value
// reports whether the active tab changed.
func (t *Tabs) Activate(id string) bool {
	item, ok := t.find(id)
	if !ok || item.Disabled || id == t.active {
		return false
	}
	t.active = id
	return true
}

// IsActive reports whether id is the active tab.
func (t *Tabs) IsActive(id string) bool { return t.active != "" && t.active == id }

func (t *Tabs) find(id string) (Item, bool) {
	for _, item := range t.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Accordion tracks open sections. In single mode opening one closes the rest.
type Accordion struct {
	items         []Item
	allowMultiple bool
	open          map[string]bool
}

// NewAccordion opens the given sections initially. In single mode only the
// first known entry of defaultOpen is kept.
func NewAccordion(items []Item, allowMultiple bool, defaultOpen ...string) *Accordion {
	a := &Accordion{
		items:         append([]Item(nil), items...),
		allowMultiple: allowMultiple,
		open:          make(map[string]bool),
	}
	for _, id := range defaultOpen {
		if !a.known(id) {
			continue
		}
		a.open[id] = true
		if !allowMultiple {
			break
		}
	}
	return a
}

// Toggle opens or closes id and reports the new state. Disabled and unknown
// sections are never toggled.
func (a *Accordion) Toggle(id string) bool {
	item, ok := a.find(id)
	if !ok || item.Disabled {
		return a.open[id]
	}
	if a.open[id] {
		delete(a.open, id)
		return false
	}
	if !a.allowMultiple {
		a.open = make(map[string]bool)
	}
	a.open[id] = true
	return true
}

// Items returns a copy of the sections in order.
func (a *Accordion) Items() []Item { return append([]Item(nil), a.items...) }

// IsOpen reports whether id is expanded.
func (a *Accordion) IsOpen(id string) bool { return a.open[id] }

// Open returns expanded section IDs in item order.
func (a *Accordion) Open() []string {
	ids := make([]string, 0, len(a.open))
	for _, item := range a.items {
		if a.open[item.ID] {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func (a *Accordion) known(id string) bool {
	_, ok := a.find(id)
	return ok
}

func (a *Accordion) find(id string) (Item, bool) {
	for _, item := range a.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
