package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// Entry describes a registered component.
type Entry struct {
	Name    string
	Level   Level
	Summary string
	Spec    *variant.Spec

	// Custom marks components registered from a document rather than built in.
	Custom bool
}

// Registry maps component names to their specs.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Builtins returns the components that ship with the design system.
func Builtins() []Entry {
	return []Entry{
		{Name: "accordion", Level: LevelMolecule, Summary: "Collapsible section: frame, header button and panel", Spec: AccordionSpec},
		{Name: "alert", Level: LevelMolecule, Summary: "Inline status message with semantic tone", Spec: AlertSpec},
		{Name: "badge", Level: LevelAtom, Summary: "Compact status or count label", Spec: BadgeSpec},
		{Name: "button", Level: LevelAtom, Summary: "Action trigger with colour and size variants", Spec: ButtonSpec},
		{Name: "card", Level: LevelMolecule, Summary: "Content container with surface and padding variants", Spec: CardSpec},
		{Name: "checkbox", Level: LevelAtom, Summary: "Boolean form control", Spec: CheckboxSpec},
		{Name: "heading", Level: LevelAtom, Summary: "Section title, levels 1 to 6", Spec: HeadingSpec},
		{Name: "input", Level: LevelAtom, Summary: "Single-line text field with validation states", Spec: InputSpec},
		{Name: "link", Level: LevelAtom, Summary: "Styled anchor", Spec: LinkSpec},
		{Name: "page-item", Level: LevelMolecule, Summary: "Page number, control or ellipsis in a pagination bar", Spec: PageItemSpec},
		{Name: "step", Level: LevelMolecule, Summary: "Stepper row for one step", Spec: StepSpec},
		{Name: "step-indicator", Level: LevelAtom, Summary: "Stepper marker for one step", Spec: StepIndicatorSpec},
		{Name: "tab", Level: LevelMolecule, Summary: "Tab button for default, pill and underline strips", Spec: TabSpec},
		{Name: "text", Level: LevelAtom, Summary: "Body copy with size, colour and weight", Spec: TextSpec},
		{Name: "toast", Level: LevelMolecule, Summary: "Floating notification anchored to the viewport", Spec: ToastSpec},
	}
}

// DefaultRegistry returns a registry pre-populated with Builtins.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, entry := range Builtins() {
		// Builtin names are unique and specs non-nil.
		_ = r.Register(entry)
	}
	return r
}

// Register adds entry. Names are normalised to lower case and must be unique.
func (r *Registry) Register(entry Entry) error {
	name := normalizeName(entry.Name)
	if name == "" {
		return fmt.Errorf("component name is required")
	}
	if entry.Spec == nil {
		return fmt.Errorf("component %q has no variant spec", name)
	}
	entry.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("component %q is already registered", name)
	}
	r.entries[name] = entry
	return nil
}

// Lookup returns the entry registered under name. Unknown names produce an
// error that suggests the closest registered name.
func (r *Registry) Lookup(name string) (Entry, error) {
	key := normalizeName(name)

	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return entry, nil
	}

	msg := fmt.Sprintf("unknown component %q", name)
	if suggestion := variant.Closest(key, r.Names()); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return Entry{}, errors.New(msg)
}

// Names returns registered names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns registered entries sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Resolve looks up name and resolves sel against its spec.
func (r *Registry) Resolve(name string, sel variant.Selection, extra ...string) (variant.ClassList, error) {
	entry, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	classes, err := variant.Resolve(entry.Spec, sel, extra...)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", entry.Name, err)
	}
	return classes, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
