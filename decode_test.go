package deskconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superdesk/deskconf"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want deskconf.Format
	}{
		{"superdesk.config.yaml", deskconf.FormatYAML},
		{"superdesk.config.yml", deskconf.FormatYAML},
		{"conf/superdesk.config.JSON", deskconf.FormatJSON},
		{"superdesk.config.toml", deskconf.FormatTOML},
		{"superdesk.config", deskconf.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, deskconf.FormatFromPath(tt.path))
		})
	}
}

func TestDecode(t *testing.T) {
	want := map[string]any{
		"apps":     []any{"superdesk-planning"},
		"features": map[string]any{"swimlane": map[string]any{"defaultNumberOfColumns": 4}, "noTakes": true},
	}

	tests := []struct {
		name    string
		format  deskconf.Format
		content string
	}{
		{
			name:   "yaml",
			format: deskconf.FormatYAML,
			content: `
apps: [superdesk-planning]
features:
  swimlane:
    defaultNumberOfColumns: 4
  noTakes: true
`,
		},
		{
			name:    "json",
			format:  deskconf.FormatJSON,
			content: `{"apps": ["superdesk-planning"], "features": {"swimlane": {"defaultNumberOfColumns": 4}, "noTakes": true}}`,
		},
		{
			name:    "json read as yaml",
			format:  deskconf.FormatYAML,
			content: `{"apps": ["superdesk-planning"], "features": {"swimlane": {"defaultNumberOfColumns": 4}, "noTakes": true}}`,
		},
		{
			name:   "toml",
			format: deskconf.FormatTOML,
			content: `
apps = ["superdesk-planning"]

[features]
noTakes = true

[features.swimlane]
defaultNumberOfColumns = 4
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deskconf.Decode([]byte(tt.content), tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, format := range []deskconf.Format{deskconf.FormatYAML, deskconf.FormatJSON, deskconf.FormatTOML} {
		got, err := deskconf.Decode([]byte("  \n\t\n"), format)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestDecode_JSONFloat(t *testing.T) {
	got, err := deskconf.Decode([]byte(`{"n": 2.5}`), deskconf.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": 2.5}, got)
}

func TestDecode_LeadingDocumentMarker(t *testing.T) {
	got, err := deskconf.Decode([]byte("---\ndefaultRoute: /a\n"), deskconf.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"defaultRoute": "/a"}, got)

	got, err = deskconf.Decode([]byte("# only a comment\n"), deskconf.FormatYAML)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecode_Errors(t *testing.T) {
	_, err := deskconf.Decode([]byte("apps: [a"), deskconf.FormatYAML)
	assert.ErrorIs(t, err, deskconf.ErrParse)

	_, err = deskconf.Decode([]byte(`{"apps": }`), deskconf.FormatJSON)
	assert.ErrorIs(t, err, deskconf.ErrParse)

	_, err = deskconf.Decode([]byte("apps = "), deskconf.FormatTOML)
	assert.ErrorIs(t, err, deskconf.ErrParse)

	_, err = deskconf.Decode([]byte("defaultRoute: /a\n---\ndefaultRoute: 42\n"), deskconf.FormatYAML)
	assert.ErrorIs(t, err, deskconf.ErrParse)
	assert.ErrorContains(t, err, "trailing documents")

	_, err = deskconf.Decode([]byte("defaultRoute: /a\n---\napps: [b\n"), deskconf.FormatYAML)
	assert.ErrorIs(t, err, deskconf.ErrParse)

	_, err = deskconf.Decode([]byte("a: 1"), deskconf.Format("ini"))
	assert.ErrorIs(t, err, deskconf.ErrInvalidInput)
}

func TestEncode_RoundTripsThroughDecode(t *testing.T) {
	doc := deskconf.DefaultDocument()

	for _, format := range []deskconf.Format{deskconf.FormatYAML, deskconf.FormatJSON, deskconf.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := deskconf.Encode(doc, format)
			require.NoError(t, err)

			got, err := deskconf.Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, map[string]any(doc), got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := deskconf.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, deskconf.FormatYAML, f)

	f, err = deskconf.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, deskconf.FormatJSON, f)

	_, err = deskconf.ParseFormat("xml")
	assert.ErrorIs(t, err, deskconf.ErrInvalidInput)
}
