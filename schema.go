package deskconf

import (
	"maps"
	"slices"
)

// Kind is the shape a schema node accepts.
type Kind int

const (
	KindString Kind = iota + 1
	KindBool
	KindInt
	KindEnum
	KindStringList
	// KindRecord is a mapping with a closed set of named fields.
	KindRecord
	// KindMap is a mapping with arbitrary keys sharing one element schema.
	KindMap
	// KindToggle is either a boolean or an options record that implies enabled.
	KindToggle
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindEnum:
		return "enum"
	case KindStringList:
		return "list of strings"
	case KindRecord:
		return "record"
	case KindMap:
		return "mapping"
	case KindToggle:
		return "boolean or options record"
	default:
		return "unknown"
	}
}

// MergeStrategy decides how a document value combines with its default.
type MergeStrategy int

const (
	// MergeReplace takes the document value wholesale.
	MergeReplace MergeStrategy = iota
	// MergeUnion appends document list entries missing from the default list.
	MergeUnion
	// MergeDeep merges mappings key by key.
	MergeDeep
)

func (m MergeStrategy) String() string {
	switch m {
	case MergeUnion:
		return "union"
	case MergeDeep:
		return "deep"
	default:
		return "replace"
	}
}

// Node is one schema node. Which fields matter depends on Kind:
// Fields for KindRecord, Elem for KindMap, Options for KindToggle,
// Enum for KindEnum. Rule is a validator tag applied to string and
// integer values and to every element of a string list.
type Node struct {
	Kind    Kind
	Merge   MergeStrategy
	Rule    string
	Enum    []string
	Fields  map[string]*Node
	Elem    *Node
	Options *Node
	Doc     string
}

// Schema is the closed set of recognized configuration keys.
type Schema struct {
	root *Node
}

// NewSchema wraps a record node as a schema root.
func NewSchema(root *Node) *Schema {
	return &Schema{root: root}
}

// DefaultSchema returns the schema of the planning client configuration.
func DefaultSchema() *Schema {
	return NewSchema(&Node{
		Kind:  KindRecord,
		Merge: MergeDeep,
		Fields: map[string]*Node{
			KeyApps: {
				Kind:  KindStringList,
				Merge: MergeUnion,
				Rule:  "required",
				Doc:   "feature/app modules to activate",
			},
			KeyImportApps: {
				Kind:  KindStringList,
				Merge: MergeUnion,
				Rule:  "required",
				Doc:   "modules to import at boot",
			},
			KeyDefaultRoute: {
				Kind: KindString,
				Rule: "required,startswith=/",
				Doc:  "initial navigation target",
			},
			KeyFeatures: {
				Kind:  KindRecord,
				Merge: MergeDeep,
				Doc:   "toggles for optional subsystems",
				Fields: map[string]*Node{
					FeatureSwimlane: {
						Kind:  KindToggle,
						Merge: MergeDeep,
						Doc:   "swimlane monitoring view",
						Options: &Node{
							Kind:  KindRecord,
							Merge: MergeDeep,
							Fields: map[string]*Node{
								"defaultNumberOfColumns": {
									Kind: KindInt,
									Rule: "min=1",
									Doc:  "columns shown when swimlane opens",
								},
							},
						},
					},
					FeatureNoTakes:  {Kind: KindBool, Doc: "disable takes"},
					FeaturePlanning: {Kind: KindBool, Doc: "enable planning"},
				},
			},
			KeyValidatorMediaMetadata: {
				Kind:  KindMap,
				Merge: MergeDeep,
				Doc:   "media metadata fields and whether they are required",
				Elem: &Node{
					Kind:  KindRecord,
					Merge: MergeDeep,
					Fields: map[string]*Node{
						"required": {Kind: KindBool},
					},
				},
			},
			KeyWorkspace: {
				Kind:  KindMap,
				Merge: MergeDeep,
				Doc:   "workspace panels",
				Elem:  &Node{Kind: KindBool},
			},
			KeyPlanningDefaultView: {
				Kind: KindEnum,
				Enum: []string{string(ViewPlanning), string(ViewEvents), string(ViewCombined)},
				Doc:  "default planning view",
			},
			KeyProfileLanguages: {
				Kind:  KindStringList,
				Merge: MergeReplace,
				Rule:  "locale",
				Doc:   "enabled profile locales",
			},
		},
	})
}

// Root returns the schema's root node.
func (s *Schema) Root() *Node {
	return s.root
}

// Lookup returns the node of a top-level key.
func (s *Schema) Lookup(key string) (*Node, bool) {
	n, ok := s.root.Fields[key]
	return n, ok
}

// Keys returns the recognized top-level keys in sorted order.
func (s *Schema) Keys() []string {
	return slices.Sorted(maps.Keys(s.root.Fields))
}

// KeyInfo describes one schema path.
type KeyInfo struct {
	Path  string   `json:"path"`
	Kind  string   `json:"kind"`
	Merge string   `json:"merge,omitempty"`
	Rule  string   `json:"rule,omitempty"`
	Enum  []string `json:"enum,omitempty"`
	Doc   string   `json:"doc,omitempty"`
}

// Describe flattens the schema into a depth-first, sorted list of paths.
// Map elements appear under a "*" segment.
func (s *Schema) Describe() []KeyInfo {
	var out []KeyInfo
	for _, key := range s.Keys() {
		out = describeNode(out, key, s.root.Fields[key])
	}
	return out
}

func describeNode(out []KeyInfo, path string, n *Node) []KeyInfo {
	info := KeyInfo{
		Path: path,
		Kind: n.Kind.String(),
		Rule: n.Rule,
		Enum: slices.Clone(n.Enum),
		Doc:  n.Doc,
	}
	switch n.Kind {
	case KindStringList, KindRecord, KindMap, KindToggle:
		info.Merge = n.Merge.String()
	}
	out = append(out, info)

	switch n.Kind {
	case KindRecord:
		for _, key := range slices.Sorted(maps.Keys(n.Fields)) {
			out = describeNode(out, joinPath(path, key), n.Fields[key])
		}
	case KindMap:
		if n.Elem != nil {
			out = describeNode(out, joinPath(path, "*"), n.Elem)
		}
	case KindToggle:
		if n.Options != nil {
			for _, key := range slices.Sorted(maps.Keys(n.Options.Fields)) {
				out = describeNode(out, joinPath(path, key), n.Options.Fields[key])
			}
		}
	}
	return out
}
