package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
	atomicerrors "github.com/alexisbeaulieu97/atomic/pkg/errors"
)

const heroYAML = `version: "1"
components:
  - name: hero
    level: molecule
    summary: Landing banner
    base: "flex flex-col"
    axes:
      tone:
        loud: "bg-danger text-white"
        calm: "bg-info-50"
      size:
        small: [p-sm, text-sm]
        large: p-lg
      framed:
        "true": border
        "false":
    defaults:
      tone: calm
      size: small
      framed: "false"
    compound:
      - when: {tone: loud, size: large}
        classes: "font-bold"
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseDocument(t *testing.T) {
	t.Parallel()

	invalidYAML := `version: "1"
components:
  - name: [hero]
`

	badAxes := `version: "1"
components:
  - name: hero
    axes:
      - tone
`

	duplicateValue := `version: "1"
components:
  - name: hero
    axes:
      tone:
        calm: a
        calm: b
`

	badVersion := `version: "2"
components:
  - name: hero
`

	unknownDefault := `version: "1"
components:
  - name: hero
    axes:
      tone:
        calm: a
    defaults:
      tone: loud
`

	duplicateName := `version: "1"
components:
  - name: hero
  - name: hero
`

	unsafeClasses := `version: "1"
components:
  - name: hero
    base: "flex \"><script>"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document keeps declaration order",
			contents: heroYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.Len(t, doc.Components, 1)
				hero := doc.Components[0]
				require.Len(t, hero.Axes, 3)
				assert.Equal(t, "tone", hero.Axes[0].Name)
				assert.Equal(t, "size", hero.Axes[1].Name)
				assert.Equal(t, "framed", hero.Axes[2].Name)
				assert.Equal(t, "loud", hero.Axes[0].Values[0].Name)
				assert.Equal(t, "calm", hero.Axes[0].Values[1].Name)
				assert.Equal(t, "p-sm text-sm", hero.Axes[1].Values[0].Classes)
				assert.Equal(t, "", hero.Axes[2].Values[1].Classes)
				assert.Equal(t, 8, hero.Axes[0].Line)
			},
		},
		{
			name:     "type mismatch returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, _ *Document, err error) {
				var parseErr *atomicerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 3, parseErr.Line)
				assert.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "axes must be a mapping",
			contents: badAxes,
			assert: func(t *testing.T, _ *Document, err error) {
				var parseErr *atomicerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 5, parseErr.Line)
				assert.Equal(t, 7, parseErr.Column)
				assert.Contains(t, parseErr.Message, "axes must be a mapping")
			},
		},
		{
			name:     "duplicate values are rejected with their position",
			contents: duplicateValue,
			assert: func(t *testing.T, _ *Document, err error) {
				var parseErr *atomicerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 7, parseErr.Line)
				assert.Contains(t, parseErr.Message, `value "calm" declared twice`)
			},
		},
		{
			name:     "unsupported version fails validation",
			contents: badVersion,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *atomicerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "defaults must name declared values",
			contents: unknownDefault,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *atomicerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "components[0].defaults.tone", validationErr.Field)
				assert.Contains(t, validationErr.Message, `"loud"`)
			},
		},
		{
			name:     "component names are unique",
			contents: duplicateName,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *atomicerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "components[1].name", validationErr.Field)
			},
		},
		{
			name:     "markup in classes is rejected",
			contents: unsafeClasses,
			assert: func(t *testing.T, _ *Document, err error) {
				var validationErr *atomicerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "components[0].base", validationErr.Field)
				assert.Contains(t, validationErr.Message, "class_tokens")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, "components.yaml", tc.contents)
			doc, err := ParseDocument(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *atomicerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestComponentResolvesInDocumentOrder(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocumentBytes("inline", []byte(heroYAML))
	require.NoError(t, err)

	entry, err := doc.Components[0].Entry()
	require.NoError(t, err)
	assert.True(t, entry.Custom)
	assert.Equal(t, catalog.LevelMolecule, entry.Level)
	assert.Equal(t, []string{"tone", "size", "framed"}, entry.Spec.AxisNames())

	classes, err := variant.Resolve(entry.Spec, variant.Selection{"tone": "loud", "size": "large"}, "mt-4")
	require.NoError(t, err)
	assert.Equal(t, variant.ClassList{"flex", "flex-col", "bg-danger", "text-white", "p-lg", "font-bold", "mt-4"}, classes)

	classes, err = variant.Resolve(entry.Spec, nil)
	require.NoError(t, err)
	assert.Equal(t, "flex flex-col bg-info-50 p-sm text-sm", classes.String())
}

func TestRegisterDocument(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocumentBytes("inline", []byte(heroYAML))
	require.NoError(t, err)

	reg := catalog.DefaultRegistry()
	added, err := Register(reg, doc)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	entry, err := reg.Lookup("hero")
	require.NoError(t, err)
	assert.True(t, entry.Custom)

	added, err = Register(reg, doc)
	assert.Equal(t, 0, added)
	var componentErr *atomicerrors.ComponentError
	require.ErrorAs(t, err, &componentErr)
	assert.Equal(t, "hero", componentErr.Component)
}

func TestRegisterRejectsBuiltinNames(t *testing.T) {
	t.Parallel()

	doc := &Document{Version: DocumentVersion, Components: []Component{{Name: "button"}}}
	require.NoError(t, ValidateDocument(doc))

	_, err := Register(catalog.DefaultRegistry(), doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestExportRoundTrip(t *testing.T) {
	t.Parallel()

	reg := catalog.DefaultRegistry()
	entry, err := reg.Lookup("checkbox")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, ExportDocument([]catalog.Entry{entry})))

	doc, err := ParseDocumentBytes("export", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, doc.Components, 1)

	rebuilt, err := doc.Components[0].Entry()
	require.NoError(t, err)
	assert.Equal(t, entry.Spec.AxisNames(), rebuilt.Spec.AxisNames())

	for _, sel := range entry.Spec.Combinations() {
		want, err := variant.Resolve(entry.Spec, sel)
		require.NoError(t, err)
		got, err := variant.Resolve(rebuilt.Spec, sel)
		require.NoError(t, err)
		assert.Equal(t, want, got, "selection %v", sel)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Parallel()

	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := Settings{LogLevel: "debug", LogFormat: "json", Theme: "dark", MaxVisiblePages: 7}
	require.NoError(t, SaveSettings(path, want))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	path := writeFile(t, "settings.yaml", "theme: dark\nmax_visible_pages: 9\n")
	t.Setenv("ATOMIC_THEME", "System")
	t.Setenv("ATOMIC_MAX_VISIBLE_PAGES", "3")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "system", s.Theme)
	assert.Equal(t, 3, s.MaxVisiblePages)
}

func TestUpdateSettingsIgnoresEnvOverrides(t *testing.T) {
	path := writeFile(t, "settings.yaml", "log_level: info\ntheme: light\nmax_visible_pages: 9\n")
	t.Setenv("ATOMIC_LOG_LEVEL", "trace")
	t.Setenv("ATOMIC_THEME", "dark")

	require.NoError(t, UpdateSettings(path, func(s *Settings) { s.Theme = "system" }))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: info")
	assert.Contains(t, string(data), "theme: system")
	assert.Contains(t, string(data), "max_visible_pages: 9")
	assert.NotContains(t, string(data), "trace")
}

func TestUpdateSettingsCreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "atomic", "settings.yaml")
	require.NoError(t, UpdateSettings(path, func(s *Settings) { s.MaxVisiblePages = 7 }))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 7, s.MaxVisiblePages)
	assert.Equal(t, DefaultSettings().Theme, s.Theme)
}

func TestUpdateSettingsValidates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	err := UpdateSettings(path, func(s *Settings) { s.Theme = "sepia" })
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "settings.yaml", "theme: sepia\n")
	_, err := LoadSettings(path)
	var validationErr *atomicerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "theme", validationErr.Field)

	require.Error(t, SaveSettings(filepath.Join(t.TempDir(), "settings.yaml"), Settings{}))
}

func TestSettingsPathHonoursEnv(t *testing.T) {
	t.Setenv("ATOMIC_SETTINGS", "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", SettingsPath())
}

func TestGenerateJSONSchema(t *testing.T) {
	t.Parallel()

	data, err := GenerateJSONSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, SchemaID, schema["$id"])
	assert.Contains(t, string(data), `"components"`)
	assert.Contains(t, string(data), "ordered mapping of value name to classes")
}

func TestValidClassTokens(t *testing.T) {
	t.Parallel()

	assert.True(t, validClassTokens(""))
	assert.True(t, validClassTokens("hover:not-disabled:bg-primary-600 min-h-[44px] w-1/2"))
	assert.False(t, validClassTokens(`a"b`))
	assert.False(t, validClassTokens("a<b"))
	assert.False(t, validClassTokens("a\x01"))
	assert.Same(t, GetValidator(), GetValidator())
}
