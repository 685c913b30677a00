package deskconf

// DefaultDocument returns a fresh copy of the built-in defaults. Each
// call builds a new value, so callers can never share or mutate it.
func DefaultDocument() Document {
	return Document{
		KeyApps: []any{
			"superdesk-planning",
		},
		KeyImportApps: []any{
			"../index",
			"superdesk-planning",
		},
		KeyDefaultRoute: "/workspace/personal",
		KeyFeatures: map[string]any{
			FeatureSwimlane: map[string]any{"defaultNumberOfColumns": 4},
			FeatureNoTakes:  true,
			FeaturePlanning: true,
		},
		KeyValidatorMediaMetadata: map[string]any{
			"headline":         map[string]any{"required": true},
			"alt_text":         map[string]any{"required": true},
			"description_text": map[string]any{"required": true},
			"copyrightholder":  map[string]any{"required": false},
			"byline":           map[string]any{"required": false},
			"usageterms":       map[string]any{"required": false},
			"copyrightnotice":  map[string]any{"required": false},
		},
		KeyWorkspace: map[string]any{
			"planning":    true,
			"assignments": true,
		},
		KeyPlanningDefaultView: string(ViewPlanning),
		KeyProfileLanguages: []any{
			"en",
			"fi_FI",
		},
	}
}
