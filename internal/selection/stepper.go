package selection

// StepState is the display state of a stepper step.
type StepState string

const (
	StepDisabled  StepState = "disabled"
	StepCompleted StepState = "completed"
	StepActive    StepState = "active"
	StepPending   StepState = "pending"
)

// Step is one stage of a stepper.
type Step struct {
	ID        string
	Label     string
	Completed bool
	Disabled  bool
}

// Stepper tracks the current step index (0-based).
type Stepper struct {
	steps   []Step
	current int
}

// NewStepper starts at current, clamped into the step range.
func NewStepper(steps []Step, current int) *Stepper {
	s := &Stepper{steps: append([]Step(nil), steps...)}
	s.GoTo(current)
	return s
}

// Current returns the active index.
func (s *Stepper) Current() int { return s.current }

// Steps returns a copy of the steps in order.
func (s *Stepper) Steps() []Step { return append([]Step(nil), s.steps...) }

// Len returns the number of steps.
func (s *Stepper) Len() int { return len(s.steps) }

// GoTo moves to index i, clamped into range, and returns the resulting index.
// Disabled steps cannot be selected.
func (s *Stepper) GoTo(i int) int {
	if len(s.steps) == 0 {
		s.current = 0
		return 0
	}
	i = min(max(i, 0), len(s.steps)-1)
	if s.steps[i].Disabled {
		return s.current
	}
	s.current = i
	return s.current
}

// Next advances to the following step.
func (s *Stepper) Next() int { return s.GoTo(s.current + 1) }

// Prev returns to the preceding step.
func (s *Stepper) Prev() int { return s.GoTo(s.current - 1) }

// State classifies step i. Disabled wins, then an explicit completion flag or
// a position before the current step, then the current step itself.
func (s *Stepper) State(i int) StepState {
	if i < 0 || i >= len(s.steps) {
		return StepPending
	}
	step := s.steps[i]
	switch {
	case step.Disabled:
		return StepDisabled
	case step.Completed || i < s.current:
		return StepCompleted
	case i == s.current:
		return StepActive
	default:
		return StepPending
	}
}

// States returns the state of every step in order.
func (s *Stepper) States() []StepState {
	out := make([]StepState, len(s.steps))
	for i := range s.steps {
		out[i] = s.State(i)
	}
	return out
}
