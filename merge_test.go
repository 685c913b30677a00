package deskconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/superdesk/deskconf"
)

func TestSchemaMerge(t *testing.T) {
	schema := deskconf.DefaultSchema()

	tests := []struct {
		name string
		base deskconf.Document
		doc  deskconf.Document
		want deskconf.Document
	}{
		{
			name: "absent keys keep defaults",
			base: deskconf.Document{"defaultRoute": "/a", "apps": []any{"x"}},
			doc:  deskconf.Document{},
			want: deskconf.Document{"defaultRoute": "/a", "apps": []any{"x"}},
		},
		{
			name: "scalar replaced",
			base: deskconf.Document{"defaultRoute": "/a"},
			doc:  deskconf.Document{"defaultRoute": "/b"},
			want: deskconf.Document{"defaultRoute": "/b"},
		},
		{
			name: "union list de-duplicates",
			base: deskconf.Document{"apps": []any{"x", "y"}},
			doc:  deskconf.Document{"apps": []any{"y", "z", "z"}},
			want: deskconf.Document{"apps": []any{"x", "y", "z"}},
		},
		{
			name: "replace list",
			base: deskconf.Document{"profileLanguages": []any{"en", "fi_FI"}},
			doc:  deskconf.Document{"profileLanguages": []any{"cs"}},
			want: deskconf.Document{"profileLanguages": []any{"cs"}},
		},
		{
			name: "empty replace list clears",
			base: deskconf.Document{"profileLanguages": []any{"en"}},
			doc:  deskconf.Document{"profileLanguages": []any{}},
			want: deskconf.Document{"profileLanguages": []any{}},
		},
		{
			name: "deep map merge",
			base: deskconf.Document{"workspace": map[string]any{"planning": true, "assignments": true}},
			doc:  deskconf.Document{"workspace": map[string]any{"assignments": false, "analytics": true}},
			want: deskconf.Document{"workspace": map[string]any{"planning": true, "assignments": false, "analytics": true}},
		},
		{
			name: "nested record merge",
			base: deskconf.Document{"validatorMediaMetadata": map[string]any{"headline": map[string]any{"required": true}}},
			doc:  deskconf.Document{"validatorMediaMetadata": map[string]any{"headline": map[string]any{"required": false}}},
			want: deskconf.Document{"validatorMediaMetadata": map[string]any{"headline": map[string]any{"required": false}}},
		},
		{
			name: "toggle options merge",
			base: deskconf.Document{"features": map[string]any{"swimlane": map[string]any{"defaultNumberOfColumns": 4}}},
			doc:  deskconf.Document{"features": map[string]any{"swimlane": map[string]any{"defaultNumberOfColumns": 2}}},
			want: deskconf.Document{"features": map[string]any{"swimlane": map[string]any{"defaultNumberOfColumns": 2}}},
		},
		{
			name: "toggle false replaces options",
			base: deskconf.Document{"features": map[string]any{"swimlane": map[string]any{"defaultNumberOfColumns": 4}}},
			doc:  deskconf.Document{"features": map[string]any{"swimlane": false}},
			want: deskconf.Document{"features": map[string]any{"swimlane": false}},
		},
		{
			name: "toggle true keeps options",
			base: deskconf.Document{"features": map[string]any{"swimlane": map[string]any{"defaultNumberOfColumns": 4}}},
			doc:  deskconf.Document{"features": map[string]any{"swimlane": true}},
			want: deskconf.Document{"features": map[string]any{"swimlane": map[string]any{"defaultNumberOfColumns": 4}}},
		},
		{
			name: "toggle options over boolean",
			base: deskconf.Document{"features": map[string]any{"swimlane": false}},
			doc:  deskconf.Document{"features": map[string]any{"swimlane": map[string]any{"defaultNumberOfColumns": 3}}},
			want: deskconf.Document{"features": map[string]any{"swimlane": map[string]any{"defaultNumberOfColumns": 3}}},
		},
		{
			name: "unknown keys carried over",
			base: deskconf.Document{"defaultRoute": "/a"},
			doc:  deskconf.Document{"theme": map[string]any{"name": "dark"}},
			want: deskconf.Document{"defaultRoute": "/a", "theme": map[string]any{"name": "dark"}},
		},
		{
			name: "nil base",
			base: nil,
			doc:  deskconf.Document{"defaultRoute": "/b"},
			want: deskconf.Document{"defaultRoute": "/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schema.Merge(tt.base, tt.doc))
		})
	}
}

func TestSchemaMerge_DoesNotModifyInputs(t *testing.T) {
	schema := deskconf.DefaultSchema()
	base := deskconf.DefaultDocument()
	doc := deskconf.Document{
		"apps":      []any{"superdesk-analytics"},
		"workspace": map[string]any{"analytics": true},
	}

	merged := schema.Merge(base, doc)
	merged["workspace"].(map[string]any)["planning"] = false
	merged["apps"].([]any)[0] = "mutated"

	assert.Equal(t, deskconf.DefaultDocument(), base)
	assert.Equal(t, deskconf.Document{
		"apps":      []any{"superdesk-analytics"},
		"workspace": map[string]any{"analytics": true},
	}, doc)
}
