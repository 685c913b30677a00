package deskconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superdesk/deskconf"
)

func TestPlanningView_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		view  deskconf.PlanningView
		valid bool
	}{
		{
			name:  "planning view is valid",
			view:  deskconf.ViewPlanning,
			valid: true,
		},
		{
			name:  "events view is valid",
			view:  deskconf.ViewEvents,
			valid: true,
		},
		{
			name:  "combined view is valid",
			view:  deskconf.ViewCombined,
			valid: true,
		},
		{
			name:  "empty view is invalid",
			view:  "",
			valid: false,
		},
		{
			name:  "lowercase view is invalid",
			view:  "planning",
			valid: false,
		},
		{
			name:  "unknown view is invalid",
			view:  "CALENDAR",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.view.IsValid())
		})
	}
}

func TestParsePlanningView(t *testing.T) {
	view, err := deskconf.ParsePlanningView("EVENTS")
	require.NoError(t, err)
	assert.Equal(t, deskconf.ViewEvents, view)

	_, err = deskconf.ParsePlanningView("events")
	require.Error(t, err)
	assert.ErrorIs(t, err, deskconf.ErrInvalidInput)
	assert.Contains(t, err.Error(), "valid views")
}

func TestDocument_Clone(t *testing.T) {
	doc := deskconf.DefaultDocument()
	clone := doc.Clone()
	require.Equal(t, doc, clone)

	clone[deskconf.KeyApps].([]any)[0] = "mutated"
	clone[deskconf.KeyFeatures].(map[string]any)[deskconf.FeaturePlanning] = false

	assert.Equal(t, deskconf.DefaultDocument(), doc)
}

func TestDocument_Keys(t *testing.T) {
	assert.Equal(t, []string{
		"apps",
		"defaultRoute",
		"features",
		"importApps",
		"planning_default_view",
		"profileLanguages",
		"validatorMediaMetadata",
		"workspace",
	}, deskconf.DefaultDocument().Keys())
}

func TestSource_String(t *testing.T) {
	s := deskconf.Source{Origin: deskconf.OriginEnv, Path: "/etc/superdesk/config.yaml"}
	assert.Equal(t, "/etc/superdesk/config.yaml (env)", s.String())
}
