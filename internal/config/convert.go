package config

import (
	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
	atomicerrors "github.com/alexisbeaulieu97/atomic/pkg/errors"
)

// Definition converts c into the plain variant definition it describes.
func (c Component) Definition() variant.Definition {
	def := variant.Definition{
		Base:     variant.Tokens(c.Base),
		Axes:     make([]variant.Axis, 0, len(c.Axes)),
		Defaults: make(map[string]string, len(c.Defaults)),
	}
	for _, axis := range c.Axes {
		out := variant.Axis{Name: axis.Name, Values: make([]variant.Value, 0, len(axis.Values))}
		for _, value := range axis.Values {
			out.Values = append(out.Values, variant.Value{Name: value.Name, Classes: variant.Tokens(value.Classes)})
		}
		def.Axes = append(def.Axes, out)
	}
	for axis, value := range c.Defaults {
		def.Defaults[axis] = value
	}
	for _, rule := range c.Compound {
		match := make(variant.Match, len(rule.When))
		for axis, value := range rule.When {
			match[axis] = value
		}
		def.Compound = append(def.Compound, variant.CompoundRule{Match: match, Classes: variant.Tokens(rule.Classes)})
	}
	return def
}

// Entry builds the catalog entry for c.
func (c Component) Entry() (catalog.Entry, error) {
	spec, err := variant.NewSpec(c.Definition())
	if err != nil {
		return catalog.Entry{}, atomicerrors.NewComponentError(c.Name, err)
	}
	level := catalog.Level(c.Level)
	if level == "" {
		level = catalog.LevelAtom
	}
	return catalog.Entry{
		Name:    c.Name,
		Level:   level,
		Summary: c.Summary,
		Spec:    spec,
		Custom:  true,
	}, nil
}

// Entries builds catalog entries for every component of doc in document order.
func (doc *Document) Entries() ([]catalog.Entry, error) {
	entries := make([]catalog.Entry, 0, len(doc.Components))
	for _, component := range doc.Components {
		entry, err := component.Entry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Register adds every component of doc to reg. Nothing is registered when any
// component fails to build; a name clash with an existing entry stops at that
// component and reports how many were added before it.
func Register(reg *catalog.Registry, doc *Document) (int, error) {
	entries, err := doc.Entries()
	if err != nil {
		return 0, err
	}
	for i, entry := range entries {
		if err := reg.Register(entry); err != nil {
			return i, atomicerrors.NewComponentError(entry.Name, err)
		}
	}
	return len(entries), nil
}

// FromEntry renders a registered entry back into document form.
func FromEntry(entry catalog.Entry) Component {
	def := entry.Spec.Definition()
	c := Component{
		Name:    entry.Name,
		Level:   string(entry.Level),
		Summary: entry.Summary,
		Base:    joinTokens(def.Base),
	}
	for _, axis := range def.Axes {
		out := Axis{Name: axis.Name}
		for _, value := range axis.Values {
			out.Values = append(out.Values, Value{Name: value.Name, Classes: joinTokens(value.Classes)})
		}
		c.Axes = append(c.Axes, out)
	}
	if len(def.Defaults) > 0 {
		c.Defaults = def.Defaults
	}
	for _, rule := range def.Compound {
		c.Compound = append(c.Compound, CompoundRule{When: map[string]string(rule.Match), Classes: joinTokens(rule.Classes)})
	}
	return c
}

func joinTokens(tokens []string) string {
	return variant.ClassList(tokens).String()
}
