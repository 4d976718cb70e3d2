package variant

import (
	"errors"
	"strings"
)

// Selection maps a subset of axis names to chosen values.
type Selection map[string]string

// ClassList is an ordered sequence of class tokens. Duplicates are kept;
// precedence between conflicting tokens is left to the CSS engine.
type ClassList []string

// String joins the tokens with single spaces.
func (c ClassList) String() string {
	return strings.Join(c, " ")
}

// Contains reports whether token appears in the list.
func (c ClassList) Contains(token string) bool {
	for _, t := range c {
		if t == token {
			return true
		}
	}
	return false
}

var errNilSpec = errors.New("variant: nil spec")

// Resolve computes the class list for sel. Output order is base tokens, each
// axis's value tokens in declaration order, the tokens of every matching
// compound rule in declaration order, then extra verbatim.
func Resolve(spec *Spec, sel Selection, extra ...string) (ClassList, error) {
	if spec == nil {
		return nil, errNilSpec
	}

	effective, err := spec.Effective(sel)
	if err != nil {
		return nil, err
	}

	out := make(ClassList, 0, spec.width+len(extra))
	out = append(out, spec.base...)
	for _, axis := range spec.axes {
		idx := spec.index[axis.Name][effective[axis.Name]]
		out = append(out, axis.Values[idx].Classes...)
	}
	for _, rule := range spec.compound {
		if rule.matches(effective) {
			out = append(out, rule.Classes...)
		}
	}
	out = append(out, extra...)

	return out, nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve(spec *Spec, sel Selection, extra ...string) ClassList {
	classes, err := Resolve(spec, sel, extra...)
	if err != nil {
		panic(err)
	}
	return classes
}

// Effective returns the full selection Resolve would use for sel: every axis
// bound to its explicit value or its default.
func (s *Spec) Effective(sel Selection) (Selection, error) {
	for _, axis := range sortedKeys(sel) {
		if _, ok := s.axisPos[axis]; !ok {
			return nil, &AxisError{
				Kind:        InvalidAxisValue,
				Axis:        axis,
				Value:       sel[axis],
				Allowed:     s.AxisNames(),
				Suggestion:  Closest(axis, s.AxisNames()),
				UnknownAxis: true,
			}
		}
	}

	effective := make(Selection, len(s.axes))
	for _, axis := range s.axes {
		if value, ok := sel[axis.Name]; ok {
			if !s.has(axis.Name, value) {
				allowed := s.Values(axis.Name)
				return nil, &AxisError{
					Kind:       InvalidAxisValue,
					Axis:       axis.Name,
					Value:      value,
					Allowed:    allowed,
					Suggestion: Closest(value, allowed),
				}
			}
			effective[axis.Name] = value
			continue
		}

		value, ok := s.defaults[axis.Name]
		if !ok {
			return nil, &AxisError{
				Kind:    MissingAxisValue,
				Axis:    axis.Name,
				Allowed: s.Values(axis.Name),
			}
		}
		effective[axis.Name] = value
	}

	return effective, nil
}

func (r CompoundRule) matches(effective Selection) bool {
	for axis, value := range r.Match {
		if effective[axis] != value {
			return false
		}
	}
	return true
}
