// Package catalog declares the built-in components of the design system.
//
// Every component owns a fixed variant.Spec and a typed props struct whose
// enums close over the spec's axis values. Props resolve to class lists with
// Classes; zero-valued fields fall back to the spec defaults.
package catalog

import (
	"strconv"

	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// Size is the shared size axis.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Sizes lists every Size in declaration order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Level places a component in the atomic hierarchy.
type Level string

const (
	LevelAtom     Level = "atom"
	LevelMolecule Level = "molecule"
)

// axisSelection builds a Selection from axis/value pairs, skipping empty values so
// the spec default applies.
func axisSelection(pairs ...string) variant.Selection {
	sel := make(variant.Selection, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		sel[pairs[i]] = pairs[i+1]
	}
	return sel
}

func flag(b bool) string {
	return strconv.FormatBool(b)
}
