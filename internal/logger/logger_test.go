package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"component": "button", "source": "builtin"})
	log.Info("registered component")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "registered component", entry["message"])
	require.Equal(t, "button", entry["component"])
	require.Equal(t, "builtin", entry["source"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDefaultLevelIsWarn(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)
	require.Equal(t, "warn", log.Level())

	log.Info("hidden")
	log.Debugf("hidden %d", 1)
	require.Equal(t, "", strings.TrimSpace(buf.String()))

	log.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.With("document", "components.yaml")
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "components.yaml", entry["document"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerConsoleFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Format: FormatConsole, Writer: buf})
	require.NoError(t, err)

	log.Debugf("loaded %d components", 3)
	require.Contains(t, buf.String(), "loaded 3 components")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	format, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, format)

	format, err = ParseFormat(" Console ")
	require.NoError(t, err)
	require.Equal(t, FormatConsole, format)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("x")
		log.Error(errors.New("x"), "x")
		require.Nil(t, log.With("k", "v"))
	})
	require.NotPanics(t, func() { Nop().Warn("x") })
}
