package config

import (
	"fmt"
	"sort"

	atomicerrors "github.com/alexisbeaulieu97/atomic/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation on a component document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return atomicerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	names := make(map[string]int, len(doc.Components))
	for i, component := range doc.Components {
		if first, exists := names[component.Name]; exists {
			return atomicerrors.NewValidationError(fieldForComponent(i, "name"),
				fmt.Sprintf("duplicate component %q (first declared at components[%d])", component.Name, first), nil)
		}
		names[component.Name] = i

		if err := validateReferences(i, component); err != nil {
			return err
		}
	}

	return nil
}

// validateReferences checks that defaults and compound rules only name
// declared axes and values.
func validateReferences(index int, component Component) error {
	values := make(map[string]map[string]struct{}, len(component.Axes))
	for _, axis := range component.Axes {
		set := make(map[string]struct{}, len(axis.Values))
		for _, value := range axis.Values {
			set[value.Name] = struct{}{}
		}
		values[axis.Name] = set
	}

	check := func(field string, match map[string]string) error {
		for _, axis := range sortedKeys(match) {
			set, ok := values[axis]
			if !ok {
				return atomicerrors.NewValidationError(field, fmt.Sprintf("references unknown axis %q", axis), nil)
			}
			if _, ok := set[match[axis]]; !ok {
				return atomicerrors.NewValidationError(field+"."+axis, fmt.Sprintf("references unknown value %q", match[axis]), nil)
			}
		}
		return nil
	}

	if err := check(fieldForComponent(index, "defaults"), component.Defaults); err != nil {
		return err
	}
	for j, rule := range component.Compound {
		if err := check(fieldForComponent(index, fmt.Sprintf("compound[%d].when", j)), rule.When); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
