package theme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseMode(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)

	_, err = ParseMode("sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sepia")
}

func TestToggleCycles(t *testing.T) {
	t.Parallel()

	cell := NewCell(Light)
	assert.Equal(t, Dark, cell.Toggle())
	assert.Equal(t, System, cell.Toggle())
	assert.Equal(t, Light, cell.Toggle())
	assert.Equal(t, Light, cell.Get())
}

func TestNewCellFallsBackToLight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Light, NewCell("").Get())
	assert.Equal(t, System, NewCell(System).Get())
}

func TestSetRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	cell := NewCell(Dark)
	require.Error(t, cell.Set("sepia"))
	assert.Equal(t, Dark, cell.Get())
}

func TestSubscribeReceivesChanges(t *testing.T) {
	t.Parallel()

	cell := NewCell(Light)

	var got []Mode
	unsubscribe := cell.Subscribe(func(m Mode) { got = append(got, m) })

	require.NoError(t, cell.Set(Dark))
	require.NoError(t, cell.Set(Dark))
	cell.Toggle()

	unsubscribe()
	unsubscribe()
	cell.Toggle()

	assert.Equal(t, []Mode{Dark, System}, got)
}

func TestSubscribersNotifiedInOrder(t *testing.T) {
	t.Parallel()

	cell := NewCell(Light)
	var order []string
	cell.Subscribe(func(Mode) { order = append(order, "first") })
	cell.Subscribe(func(Mode) { order = append(order, "second") })
	assert.NotNil(t, cell.Subscribe(nil))

	cell.Toggle()
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestListenerMayReadCell(t *testing.T) {
	t.Parallel()

	cell := NewCell(Light)
	var seen Mode
	cell.Subscribe(func(Mode) { seen = cell.Get() })

	cell.Toggle()
	assert.Equal(t, Dark, seen)
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	cell := NewCell(Light)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cell.Toggle()
		}()
		go func() {
			defer wg.Done()
			assert.True(t, cell.Get().Valid())
		}()
	}
	wg.Wait()
	assert.True(t, cell.Get().Valid())
}

func TestEffective(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Dark, System.Effective(true))
	assert.Equal(t, Light, System.Effective(false))
	assert.Equal(t, Light, Light.Effective(true))
	assert.Equal(t, "System", System.Label())
}

func TestZeroValueCellIsUsable(t *testing.T) {
	t.Parallel()

	var cell Cell
	assert.Equal(t, Light, cell.Get())

	var seen []Mode
	unsubscribe := cell.Subscribe(func(mode Mode) { seen = append(seen, mode) })
	defer unsubscribe()

	require.NoError(t, cell.Set(Light))
	assert.Empty(t, seen, "setting the implicit mode is not a change")

	assert.Equal(t, Dark, cell.Toggle())
	require.NoError(t, cell.Set(System))
	assert.Equal(t, []Mode{Dark, System}, seen)
}
