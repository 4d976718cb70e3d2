package catalog

import (
	"github.com/alexisbeaulieu97/atomic/internal/selection"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

// Orientation lays a stepper out in a row or a column.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// StepIndicator is the marker style of a stepper.
type StepIndicator string

const (
	IndicatorDefault  StepIndicator = "default"
	IndicatorNumbered StepIndicator = "numbered"
	IndicatorDots     StepIndicator = "dots"
)

func stepStateValues(active, completed, pending, disabled string) []variant.Value {
	return []variant.Value{
		variant.V(string(selection.StepActive), active),
		variant.V(string(selection.StepCompleted), completed),
		variant.V(string(selection.StepPending), pending),
		variant.V(string(selection.StepDisabled), disabled),
	}
}

// StepSpec styles a step row, including its label text.
var StepSpec = variant.NewBuilder().
	Base("flex items-center transition-all").
	Axis("orientation",
		variant.V(string(OrientationHorizontal), "flex-row"),
		variant.V(string(OrientationVertical), "flex-col"),
	).
	Axis("state", stepStateValues("", "", "opacity-50", "opacity-30 cursor-not-allowed")...).
	Default("orientation", string(OrientationHorizontal)).
	Default("state", string(selection.StepPending)).
	MustBuild()

// StepIndicatorSpec styles the circular marker of a step.
var StepIndicatorSpec = variant.NewBuilder().
	Base("flex items-center justify-center rounded-full border-2 transition-all").
	Axis("variant",
		variant.V(string(IndicatorDefault), "w-8 h-8"),
		variant.V(string(IndicatorNumbered), "w-10 h-10 font-semibold"),
		variant.V(string(IndicatorDots), "w-3 h-3"),
	).
	Axis("state", stepStateValues(
		"border-primary bg-primary text-text-on-primary",
		"border-success bg-success text-text-on-success",
		"border-border bg-background-secondary text-text-muted",
		"border-border bg-background-secondary text-text-muted",
	)...).
	Default("variant", string(IndicatorDefault)).
	Default("state", string(selection.StepPending)).
	MustBuild()

// StepProps selects a step row's appearance.
type StepProps struct {
	Orientation Orientation
	State       selection.StepState
	Clickable   bool
	Class       []string
}

func (p StepProps) Selection() variant.Selection {
	return axisSelection("orientation", string(p.Orientation), "state", string(p.State))
}

// Classes resolves the row. Clickable steps that are not disabled get a
// pointer cursor ahead of caller classes.
func (p StepProps) Classes() (variant.ClassList, error) {
	var extra []string
	if p.Clickable && p.State != selection.StepDisabled {
		extra = append(extra, "cursor-pointer")
	}
	extra = append(extra, p.Class...)
	return variant.Resolve(StepSpec, p.Selection(), extra...)
}

// StepIndicatorProps selects a step marker's appearance.
type StepIndicatorProps struct {
	Variant StepIndicator
	State   selection.StepState
	Class   []string
}

func (p StepIndicatorProps) Selection() variant.Selection {
	return axisSelection("variant", string(p.Variant), "state", string(p.State))
}

func (p StepIndicatorProps) Classes() (variant.ClassList, error) {
	return variant.Resolve(StepIndicatorSpec, p.Selection(), p.Class...)
}

// RenderedStep is a stepper step ready for markup.
type RenderedStep struct {
	ID        string
	Label     string
	Number    int
	State     selection.StepState
	Classes   variant.ClassList
	Indicator variant.ClassList
	Text      variant.ClassList

	// Connector holds the divider classes after the step; empty for the last step.
	Connector variant.ClassList
}

// StepperTrack resolves every step of s in order, using its current state.
func StepperTrack(s *selection.Stepper, orientation Orientation, indicator StepIndicator, clickable bool) ([]RenderedStep, error) {
	steps := s.Steps()
	states := s.States()
	out := make([]RenderedStep, 0, len(steps))
	for i, step := range steps {
		state := states[i]
		row, err := StepProps{Orientation: orientation, State: state, Clickable: clickable}.Classes()
		if err != nil {
			return nil, err
		}
		marker, err := StepIndicatorProps{Variant: indicator, State: state}.Classes()
		if err != nil {
			return nil, err
		}

		rendered := RenderedStep{
			ID:        step.ID,
			Label:     step.Label,
			Number:    i + 1,
			State:     state,
			Classes:   row,
			Indicator: marker,
			Text:      stepTextClasses(state),
		}
		if i < len(steps)-1 {
			rendered.Connector = stepConnector(orientation, state)
		}
		out = append(out, rendered)
	}
	return out, nil
}

func stepTextClasses(state selection.StepState) variant.ClassList {
	classes := variant.ClassList{"text-sm", "font-medium"}
	switch state {
	case selection.StepActive:
		classes = append(classes, "text-primary")
	case selection.StepCompleted:
		classes = append(classes, "text-success")
	case selection.StepPending:
		classes = append(classes, "text-text-muted")
	}
	return classes
}

func stepConnector(orientation Orientation, state selection.StepState) variant.ClassList {
	classes := variant.ClassList{"mx-md"}
	if orientation == OrientationVertical {
		classes = variant.ClassList{"my-md"}
	}
	if state == selection.StepCompleted {
		classes = append(classes, "border-success")
	}
	return classes
}
