package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tabItems() []Item {
	return []Item{
		{ID: "overview", Disabled: true},
		{ID: "usage"},
		{ID: "api"},
	}
}

func TestTabsInitialSelection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "api", NewTabs(tabItems(), "api").Active())
	assert.Equal(t, "usage", NewTabs(tabItems(), "overview").Active(), "disabled default falls back to first enabled")
	assert.Equal(t, "usage", NewTabs(tabItems(), "").Active())
	assert.Equal(t, "a", NewTabs([]Item{{ID: "a", Disabled: true}}, "").Active())
	assert.Equal(t, "", NewTabs(nil, "x").Active())
}

func TestTabsActivate(t *testing.T) {
	t.Parallel()

	tabs := NewTabs(tabItems(), "")
	assert.False(t, tabs.Activate("overview"))
	assert.False(t, tabs.Activate("missing"))
	assert.False(t, tabs.Activate("usage"))
	assert.True(t, tabs.Activate("api"))
	assert.True(t, tabs.IsActive("api"))
	assert.False(t, tabs.IsActive("usage"))
	assert.Len(t, tabs.Items(), 3)
}

func TestAccordionSingleMode(t *testing.T) {
	t.Parallel()

	acc := NewAccordion([]Item{{ID: "a"}, {ID: "b"}, {ID: "c", Disabled: true}}, false, "missing", "b", "a")
	assert.Equal(t, []string{"b"}, acc.Open())

	assert.True(t, acc.Toggle("a"))
	assert.Equal(t, []string{"a"}, acc.Open())

	assert.False(t, acc.Toggle("a"))
	assert.Empty(t, acc.Open())

	assert.False(t, acc.Toggle("c"))
	assert.False(t, acc.IsOpen("c"))
}

func TestAccordionMultipleMode(t *testing.T) {
	t.Parallel()

	acc := NewAccordion([]Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}, true, "c")
	acc.Toggle("a")
	assert.Equal(t, []string{"a", "c"}, acc.Open())

	acc.Toggle("c")
	assert.Equal(t, []string{"a"}, acc.Open())
}

func TestStepperStates(t *testing.T) {
	t.Parallel()

	s := NewStepper([]Step{
		{ID: "account"},
		{ID: "profile"},
		{ID: "billing", Disabled: true},
		{ID: "review", Completed: true},
		{ID: "done"},
	}, 1)

	assert.Equal(t, []StepState{StepCompleted, StepActive, StepDisabled, StepCompleted, StepPending}, s.States())
	assert.Equal(t, StepPending, s.State(99))
}

func TestStepperNavigationSkipsDisabled(t *testing.T) {
	t.Parallel()

	s := NewStepper([]Step{{ID: "a"}, {ID: "b", Disabled: true}, {ID: "c"}}, 0)
	assert.Equal(t, 0, s.Next(), "disabled step blocks advance")
	assert.Equal(t, 2, s.GoTo(2))
	assert.Equal(t, 2, s.GoTo(10))
	assert.Equal(t, 0, s.GoTo(-1))
	assert.Equal(t, 0, s.Prev())
	assert.Equal(t, 3, s.Len())

	empty := NewStepper(nil, 4)
	assert.Equal(t, 0, empty.Current())
}
