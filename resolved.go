package deskconf

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// ResolvedConfig is the validated, defaulted configuration. It is built
// once by Provider.Resolve and never changes afterwards; every accessor
// returns a copy, so a ResolvedConfig is safe to share between goroutines.
type ResolvedConfig struct {
	source                 Source
	document               Document
	apps                   []string
	importApps             []string
	defaultRoute           string
	features               map[string]Feature
	validatorMediaMetadata map[string]FieldRule
	workspace              map[string]bool
	planningDefaultView    PlanningView
	profileLanguages       []string
	extra                  map[string]any
}

// newResolvedConfig builds the typed view of a merged document. The
// document must already satisfy the schema, so the type assertions
// below only skip values that lenient mode let through.
func newResolvedConfig(s *Schema, doc Document, src Source) *ResolvedConfig {
	c := &ResolvedConfig{
		source:                 src,
		document:               doc,
		features:               map[string]Feature{},
		validatorMediaMetadata: map[string]FieldRule{},
		workspace:              map[string]bool{},
	}

	c.apps = stringList(doc[KeyApps])
	c.importApps = stringList(doc[KeyImportApps])
	c.defaultRoute, _ = doc[KeyDefaultRoute].(string)
	c.profileLanguages = stringList(doc[KeyProfileLanguages])
	if view, ok := doc[KeyPlanningDefaultView].(string); ok {
		c.planningDefaultView = PlanningView(view)
	}

	if m, ok := doc[KeyFeatures].(map[string]any); ok {
		for name, v := range m {
			switch t := v.(type) {
			case bool:
				c.features[name] = Feature{Enabled: t}
			case map[string]any:
				c.features[name] = Feature{Enabled: true, Options: cloneMap(t)}
			}
		}
	}

	if m, ok := doc[KeyValidatorMediaMetadata].(map[string]any); ok {
		for field, v := range m {
			rule, _ := v.(map[string]any)
			required, _ := rule["required"].(bool)
			c.validatorMediaMetadata[field] = FieldRule{Required: required}
		}
	}

	if m, ok := doc[KeyWorkspace].(map[string]any); ok {
		for name, v := range m {
			if enabled, ok := v.(bool); ok {
				c.workspace[name] = enabled
			}
		}
	}

	for key, v := range doc {
		if _, known := s.Lookup(key); known {
			continue
		}
		if c.extra == nil {
			c.extra = map[string]any{}
		}
		c.extra[key] = cloneValue(v)
	}

	return c
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Source reports where the document was read from.
func (c *ResolvedConfig) Source() Source {
	return c.source
}

func (c *ResolvedConfig) Apps() []string {
	return slices.Clone(c.apps)
}

func (c *ResolvedConfig) ImportApps() []string {
	return slices.Clone(c.importApps)
}

func (c *ResolvedConfig) DefaultRoute() string {
	return c.defaultRoute
}

// Features returns every toggle-shaped feature by name.
func (c *ResolvedConfig) Features() map[string]Feature {
	out := make(map[string]Feature, len(c.features))
	for name, f := range c.features {
		out[name] = f.clone()
	}
	return out
}

// Feature returns a single feature. Unknown features report false.
func (c *ResolvedConfig) Feature(name string) (Feature, bool) {
	f, ok := c.features[name]
	if !ok {
		return Feature{}, false
	}
	return f.clone(), true
}

// FeatureEnabled is shorthand for checking a toggle.
func (c *ResolvedConfig) FeatureEnabled(name string) bool {
	return c.features[name].Enabled
}

// Swimlane returns the swimlane options when the feature is enabled.
func (c *ResolvedConfig) Swimlane() (SwimlaneOptions, bool) {
	f, ok := c.features[FeatureSwimlane]
	if !ok || !f.Enabled {
		return SwimlaneOptions{}, false
	}
	cols, _ := asInt(f.Options["defaultNumberOfColumns"])
	return SwimlaneOptions{DefaultNumberOfColumns: cols}, true
}

func (c *ResolvedConfig) ValidatorMediaMetadata() map[string]FieldRule {
	return maps.Clone(c.validatorMediaMetadata)
}

// RequiredMediaFields lists the media metadata fields marked required, sorted.
func (c *ResolvedConfig) RequiredMediaFields() []string {
	var out []string
	for field, rule := range c.validatorMediaMetadata {
		if rule.Required {
			out = append(out, field)
		}
	}
	slices.Sort(out)
	return out
}

func (c *ResolvedConfig) Workspace() map[string]bool {
	return maps.Clone(c.workspace)
}

func (c *ResolvedConfig) WorkspaceEnabled(name string) bool {
	return c.workspace[name]
}

func (c *ResolvedConfig) PlanningDefaultView() PlanningView {
	return c.planningDefaultView
}

func (c *ResolvedConfig) ProfileLanguages() []string {
	return slices.Clone(c.profileLanguages)
}

// Extra returns unrecognized top-level keys kept in lenient mode.
func (c *ResolvedConfig) Extra() map[string]any {
	return cloneMap(c.extra)
}

// Document returns a copy of the merged document with original key names.
func (c *ResolvedConfig) Document() Document {
	return c.document.Clone()
}

// Get returns a copy of a single top-level value.
func (c *ResolvedConfig) Get(key string) (any, error) {
	v, ok := c.document[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %q", ErrNotFound, key)
	}
	return cloneValue(v), nil
}

// Equal reports whether two resolved configurations are structurally equal.
func (c *ResolvedConfig) Equal(o *ResolvedConfig) bool {
	if c == nil || o == nil {
		return c == o
	}
	return reflect.DeepEqual(*c, *o)
}

// MarshalJSON emits the merged document.
func (c *ResolvedConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any(c.document))
}
