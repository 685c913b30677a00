package deskconf

import (
	"fmt"
	"maps"
	"slices"
)

// Document is a raw configuration document: string keys mapped to lists,
// nested mappings, booleans, integers and strings, exactly as decoded.
type Document map[string]any

// Top-level keys recognized by the schema.
const (
	KeyApps                   = "apps"
	KeyImportApps             = "importApps"
	KeyDefaultRoute           = "defaultRoute"
	KeyFeatures               = "features"
	KeyValidatorMediaMetadata = "validatorMediaMetadata"
	KeyWorkspace              = "workspace"
	KeyPlanningDefaultView    = "planning_default_view"
	KeyProfileLanguages       = "profileLanguages"
)

// Known feature names.
const (
	FeatureSwimlane = "swimlane"
	FeatureNoTakes  = "noTakes"
	FeaturePlanning = "planning"
)

// Origin tells where a candidate source path came from.
type Origin string

const (
	OriginFlag     Origin = "flag"
	OriginEnv      Origin = "env"
	OriginExplicit Origin = "explicit"
	OriginDefault  Origin = "default"
)

// Source is one candidate location of the configuration document.
type Source struct {
	Origin Origin `json:"origin"`
	Path   string `json:"path"`
}

func (s Source) String() string {
	return fmt.Sprintf("%s (%s)", s.Path, s.Origin)
}

// PlanningView selects the default planning list view.
type PlanningView string

const (
	ViewPlanning PlanningView = "PLANNING"
	ViewEvents   PlanningView = "EVENTS"
	ViewCombined PlanningView = "COMBINED"
)

// PlanningViews lists every valid PlanningView.
func PlanningViews() []PlanningView {
	return []PlanningView{ViewPlanning, ViewEvents, ViewCombined}
}

func (v PlanningView) IsValid() bool {
	return slices.Contains(PlanningViews(), v)
}

func ParsePlanningView(s string) (PlanningView, error) {
	view := PlanningView(s)
	if !view.IsValid() {
		return "", fmt.Errorf("%w: invalid planning view: %s (valid views: PLANNING, EVENTS, COMBINED)", ErrInvalidInput, s)
	}
	return view, nil
}

// FieldRule drives required-field validation of media metadata.
type FieldRule struct {
	Required bool `json:"required"`
}

// Feature is a resolved feature toggle. Options is nil when the feature
// was configured as a plain boolean.
type Feature struct {
	Enabled bool
	Options map[string]any
}

func (f Feature) clone() Feature {
	return Feature{Enabled: f.Enabled, Options: cloneMap(f.Options)}
}

// SwimlaneOptions are the typed options of the swimlane feature.
type SwimlaneOptions struct {
	DefaultNumberOfColumns int
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Document:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return slices.Clone(t)
	default:
		return v
	}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	return Document(cloneMap(d))
}

// Keys returns the document's top-level keys in sorted order.
func (d Document) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}
