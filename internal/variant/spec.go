// Package variant resolves style-variant selections into ordered CSS class lists.
//
// A Spec is declared once per component: base classes, named axes with a
// closed set of values, defaults, and compound rules that apply when several
// axes match at the same time. Specs are validated when they are built, so a
// typo in a default or a compound rule fails at definition time instead of
// producing an unstyled element at render time.
//
//	button := variant.NewBuilder().
//		Base("inline-flex items-center").
//		Axis("variant",
//			variant.V("primary", "bg-primary text-text-on-primary"),
//			variant.V("secondary", "bg-secondary text-text-on-secondary"),
//		).
//		Axis("size",
//			variant.V("small", "px-md py-sm text-sm"),
//			variant.V("medium", "px-lg py-md text-base"),
//		).
//		Default("variant", "primary").
//		Default("size", "medium").
//		MustBuild()
//
//	classes, err := variant.Resolve(button, variant.Selection{"size": "small"}, "w-full")
package variant

import (
	"fmt"
	"sort"
	"strings"
)

// Value is one named option of an axis and the class tokens it contributes.
type Value struct {
	Name    string   `json:"name"`
	Classes []string `json:"classes,omitempty"`
}

// Axis is a named style dimension with an ordered, closed set of values.
type Axis struct {
	Name   string  `json:"name"`
	Values []Value `json:"values"`
}

// Match is a partial axis → value mapping used by compound rules.
type Match map[string]string

// CompoundRule appends Classes when every entry of Match equals the resolved value.
type CompoundRule struct {
	Match   Match    `json:"match"`
	Classes []string `json:"classes,omitempty"`
}

// Definition is the plain-data form of a Spec. It carries no guarantees until
// passed through NewSpec.
type Definition struct {
	Base     []string          `json:"base,omitempty"`
	Axes     []Axis            `json:"axes,omitempty"`
	Compound []CompoundRule    `json:"compound,omitempty"`
	Defaults map[string]string `json:"defaults,omitempty"`
}

// Spec is a validated, immutable variant definition.
type Spec struct {
	base     []string
	axes     []Axis
	compound []CompoundRule
	defaults map[string]string

	// axis name → value name → index into axes[i].Values
	index   map[string]map[string]int
	axisPos map[string]int
	width   int
}

// NewSpec validates def and returns the resulting Spec. Every problem found is
// reported, joined into a single error of *SpecError values.
func NewSpec(def Definition) (*Spec, error) {
	var problems []error
	report := func(field, format string, args ...any) {
		problems = append(problems, &SpecError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	spec := &Spec{
		base:     cloneTokens(def.Base),
		axes:     make([]Axis, 0, len(def.Axes)),
		defaults: make(map[string]string, len(def.Defaults)),
		index:    make(map[string]map[string]int, len(def.Axes)),
		axisPos:  make(map[string]int, len(def.Axes)),
	}

	for i, axis := range def.Axes {
		field := fmt.Sprintf("axes[%d]", i)
		name := strings.TrimSpace(axis.Name)
		if name == "" {
			report(field, "axis name is required")
			continue
		}
		if _, dup := spec.axisPos[name]; dup {
			report(field, "duplicate axis %q", name)
			continue
		}
		if len(axis.Values) == 0 {
			report(field, "axis %q declares no values", name)
			continue
		}

		values := make(map[string]int, len(axis.Values))
		copied := Axis{Name: name, Values: make([]Value, 0, len(axis.Values))}
		for j, value := range axis.Values {
			valueName := strings.TrimSpace(value.Name)
			if valueName == "" {
				report(fmt.Sprintf("%s.values[%d]", field, j), "value name is required")
				continue
			}
			if _, dup := values[valueName]; dup {
				report(fmt.Sprintf("%s.values[%d]", field, j), "duplicate value %q on axis %q", valueName, name)
				continue
			}
			values[valueName] = len(copied.Values)
			copied.Values = append(copied.Values, Value{Name: valueName, Classes: cloneTokens(value.Classes)})
		}

		spec.axisPos[name] = len(spec.axes)
		spec.index[name] = values
		spec.axes = append(spec.axes, copied)
	}

	for _, axis := range sortedKeys(def.Defaults) {
		value := def.Defaults[axis]
		if !spec.has(axis, value) {
			report("defaults."+axis, "default %q is not a declared value of axis %q", value, axis)
			continue
		}
		spec.defaults[axis] = value
	}

	for i, rule := range def.Compound {
		field := fmt.Sprintf("compound[%d]", i)
		if len(rule.Match) == 0 {
			report(field, "compound rule has an empty match")
			continue
		}
		ok := true
		match := make(Match, len(rule.Match))
		for _, axis := range sortedKeys(rule.Match) {
			value := rule.Match[axis]
			if !spec.has(axis, value) {
				report(field, "match %s=%q does not name a declared axis value", axis, value)
				ok = false
				continue
			}
			match[axis] = value
		}
		if ok {
			spec.compound = append(spec.compound, CompoundRule{Match: match, Classes: cloneTokens(rule.Classes)})
		}
	}

	if len(problems) > 0 {
		return nil, joinSpecErrors(problems)
	}

	spec.width = len(spec.base)
	for _, axis := range spec.axes {
		longest := 0
		for _, value := range axis.Values {
			longest = max(longest, len(value.Classes))
		}
		spec.width += longest
	}

	return spec, nil
}

func (s *Spec) has(axis, value string) bool {
	values, ok := s.index[axis]
	if !ok {
		return false
	}
	_, ok = values[value]
	return ok
}

// Base returns a copy of the base class tokens.
func (s *Spec) Base() []string {
	return cloneTokens(s.base)
}

// Axes returns a copy of the declared axes in declaration order.
func (s *Spec) Axes() []Axis {
	out := make([]Axis, len(s.axes))
	for i, axis := range s.axes {
		values := make([]Value, len(axis.Values))
		for j, value := range axis.Values {
			values[j] = Value{Name: value.Name, Classes: cloneTokens(value.Classes)}
		}
		out[i] = Axis{Name: axis.Name, Values: values}
	}
	return out
}

// AxisNames returns the axis names in declaration order.
func (s *Spec) AxisNames() []string {
	names := make([]string, len(s.axes))
	for i, axis := range s.axes {
		names[i] = axis.Name
	}
	return names
}

// Values returns the declared value names of axis, or nil when the axis is unknown.
func (s *Spec) Values(axis string) []string {
	pos, ok := s.axisPos[axis]
	if !ok {
		return nil
	}
	names := make([]string, len(s.axes[pos].Values))
	for i, value := range s.axes[pos].Values {
		names[i] = value.Name
	}
	return names
}

// Defaults returns a copy of the default axis values.
func (s *Spec) Defaults() map[string]string {
	out := make(map[string]string, len(s.defaults))
	for k, v := range s.defaults {
		out[k] = v
	}
	return out
}

// Compound returns a copy of the compound rules in declaration order.
func (s *Spec) Compound() []CompoundRule {
	out := make([]CompoundRule, len(s.compound))
	for i, rule := range s.compound {
		match := make(Match, len(rule.Match))
		for k, v := range rule.Match {
			match[k] = v
		}
		out[i] = CompoundRule{Match: match, Classes: cloneTokens(rule.Classes)}
	}
	return out
}

// Definition converts the spec back into its plain-data form.
func (s *Spec) Definition() Definition {
	return Definition{
		Base:     s.Base(),
		Axes:     s.Axes(),
		Compound: s.Compound(),
		Defaults: s.Defaults(),
	}
}

// Combinations enumerates every full selection in declaration order, the
// first axis varying slowest. Tests use it to resolve all declared variants.
func (s *Spec) Combinations() []Selection {
	combos := []Selection{{}}
	for _, axis := range s.axes {
		next := make([]Selection, 0, len(combos)*len(axis.Values))
		for _, combo := range combos {
			for _, value := range axis.Values {
				sel := make(Selection, len(combo)+1)
				for k, v := range combo {
					sel[k] = v
				}
				sel[axis.Name] = value.Name
				next = append(next, sel)
			}
		}
		combos = next
	}
	return combos
}

// Tokens splits a space-separated class string into tokens.
func Tokens(classes string) []string {
	return strings.Fields(classes)
}

func cloneTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
