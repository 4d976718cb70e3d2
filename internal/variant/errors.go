package variant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrMissingAxisValue reports an axis with neither a selected value nor a default.
	ErrMissingAxisValue = errors.New("missing axis value")
	// ErrInvalidAxisValue reports a selected value outside the axis's declared set.
	ErrInvalidAxisValue = errors.New("invalid axis value")
)

// ErrorKind classifies resolution failures.
type ErrorKind int

const (
	MissingAxisValue ErrorKind = iota + 1
	InvalidAxisValue
)

func (k ErrorKind) String() string {
	switch k {
	case MissingAxisValue:
		return "MissingAxisValue"
	case InvalidAxisValue:
		return "InvalidAxisValue"
	default:
		return "Unknown"
	}
}

// AxisError describes why a selection could not be resolved.
type AxisError struct {
	Kind       ErrorKind
	Axis       string
	Value      string
	Allowed    []string
	Suggestion string

	// UnknownAxis is set when the selection names an axis the spec does not declare.
	UnknownAxis bool
}

func (e *AxisError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	switch e.Kind {
	case MissingAxisValue:
		fmt.Fprintf(&b, "%s: axis %q has no selected value and no default", ErrMissingAxisValue, e.Axis)
	case InvalidAxisValue:
		if e.UnknownAxis {
			fmt.Fprintf(&b, "%s: unknown axis %q", ErrInvalidAxisValue, e.Axis)
		} else {
			fmt.Fprintf(&b, "%s: %q is not a value of axis %q", ErrInvalidAxisValue, e.Value, e.Axis)
		}
	default:
		fmt.Fprintf(&b, "axis %q: %q", e.Axis, e.Value)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&b, "; allowed: %s", strings.Join(e.Allowed, ", "))
	}
	return b.String()
}

// Is matches the sentinel corresponding to the error kind.
func (e *AxisError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case MissingAxisValue:
		return target == ErrMissingAxisValue
	case InvalidAxisValue:
		return target == ErrInvalidAxisValue
	}
	return false
}

// SpecError reports an inconsistency found while building a Spec.
type SpecError struct {
	Field   string
	Message string
}

func (e *SpecError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid variant spec: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid variant spec: %s", e.Message)
}

func joinSpecErrors(problems []error) error {
	if len(problems) == 1 {
		return problems[0]
	}
	return errors.Join(problems...)
}

// Closest returns the candidate nearest to input by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func Closest(input string, candidates []string) string {
	if input == "" {
		return ""
	}
	needle := strings.ToLower(input)
	best := ""
	bestDist := -1
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(candidate))
		if bestDist == -1 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	if bestDist < 0 || bestDist > suggestionThreshold(input) {
		return ""
	}
	return best
}

func suggestionThreshold(input string) int {
	limit := len(input) / 3
	if limit < 2 {
		limit = 2
	}
	return limit
}
