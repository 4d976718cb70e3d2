// Package theme holds the current colour-scheme preference.
//
// A Cell is created once at the composition root and passed explicitly to
// whatever needs to read or change the theme. Writes go through Set or
// Toggle; subscribers are notified synchronously after every change.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Mode is a colour-scheme preference.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// Modes lists the supported modes in toggle order.
func Modes() []Mode {
	return []Mode{Light, Dark, System}
}

// ParseMode converts a string into a Mode, case-insensitively.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.Valid() {
		return "", fmt.Errorf("unknown theme mode %q (expected light, dark or system)", s)
	}
	return mode, nil
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	switch m {
	case Light, Dark, System:
		return true
	}
	return false
}

// Next returns the mode that follows m in the toggle cycle.
func (m Mode) Next() Mode {
	switch m {
	case Light:
		return Dark
	case Dark:
		return System
	default:
		return Light
	}
}

// Effective resolves System against the platform preference.
func (m Mode) Effective(systemDark bool) Mode {
	if m != System {
		return m
	}
	if systemDark {
		return Dark
	}
	return Light
}

// Label is the human-readable name of the mode.
func (m Mode) Label() string {
	switch m {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	case System:
		return "System"
	}
	return string(m)
}

// Icon returns the glyph shown next to the label.
func (m Mode) Icon() string {
	switch m {
	case Light:
		return "☀"
	case Dark:
		return "☾"
	default:
		return "◐"
	}
}

// Listener receives the new mode after every change.
type Listener func(Mode)

// Cell is a concurrency-safe holder for the current Mode. The zero value
// holds Light and is ready to use.
type Cell struct {
	mu        sync.RWMutex
	mode      Mode
	nextID    int
	listeners map[int]Listener
}

// NewCell returns a cell holding initial, or Light when initial is invalid.
func NewCell(initial Mode) *Cell {
	if !initial.Valid() {
		initial = Light
	}
	return &Cell{mode: initial, listeners: make(map[int]Listener)}
}

// Get returns the current mode.
func (c *Cell) Get() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current()
}

// current returns the held mode, treating the zero value as Light. Callers hold c.mu.
func (c *Cell) current() Mode {
	if c.mode == "" {
		return Light
	}
	return c.mode
}

// Set replaces the current mode. Listeners are notified only when the mode changes.
func (c *Cell) Set(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown theme mode %q", mode)
	}

	c.mu.Lock()
	changed := c.current() != mode
	c.mode = mode
	listeners := c.snapshot()
	c.mu.Unlock()

	if changed {
		notify(listeners, mode)
	}
	return nil
}

// Toggle advances to the next mode in the light → dark → system cycle and returns it.
func (c *Cell) Toggle() Mode {
	c.mu.Lock()
	c.mode = c.current().Next()
	mode := c.mode
	listeners := c.snapshot()
	c.mu.Unlock()

	notify(listeners, mode)
	return mode
}

// Subscribe registers fn for change notifications and returns a function that removes it.
func (c *Cell) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}

	c.mu.Lock()
	if c.listeners == nil {
		c.listeners = make(map[int]Listener)
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// snapshot returns listeners in subscription order. Callers hold c.mu.
func (c *Cell) snapshot() []Listener {
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Listener, len(ids))
	for i, id := range ids {
		out[i] = c.listeners[id]
	}
	return out
}

func notify(listeners []Listener, mode Mode) {
	for _, fn := range listeners {
		fn(mode)
	}
}
