package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("components.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "components.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: components.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithColumn(t *testing.T) {
	t.Parallel()

	err := NewParseErrorAt("components.yaml", 4, 7, "axes must be a mapping")
	require.Equal(t, "parse error: components.yaml:4:7: axes must be a mapping", err.Error())

	err = NewParseError("components.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: components.yaml: empty document", err.Error())
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[1].defaults.size", "references unknown value", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[1].defaults.size", validationErr.Field)
	require.Contains(t, validationErr.Message, "references unknown value")
}

func TestComponentErrorIncludesName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("already registered")
	err := NewComponentError("button", underlying)

	var componentErr *ComponentError
	require.ErrorAs(t, err, &componentErr)
	require.Equal(t, "button", componentErr.Component)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "component button: already registered", err.Error())
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var componentErr *ComponentError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, componentErr.Error())
	require.NoError(t, componentErr.Unwrap())
}
