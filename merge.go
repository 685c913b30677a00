package deskconf

import (
	"maps"
	"slices"
)

// Merge lays doc over base following each node's merge strategy and
// returns a new document; neither input is modified. Both are expected
// to have passed Validate already.
func (s *Schema) Merge(base, doc Document) Document {
	merged, _ := mergeValue(s.root, normalize(base), normalize(doc)).(map[string]any)
	if merged == nil {
		merged = map[string]any{}
	}
	return Document(merged)
}

func mergeValue(n *Node, base, over any) any {
	if over == nil {
		return cloneValue(base)
	}
	if base == nil || n == nil {
		return cloneValue(over)
	}

	switch n.Kind {
	case KindRecord:
		if n.Merge == MergeDeep {
			return mergeMaps(base, over, func(key string) *Node { return n.Fields[key] })
		}
	case KindMap:
		if n.Merge == MergeDeep {
			return mergeMaps(base, over, func(string) *Node { return n.Elem })
		}
	case KindToggle:
		if n.Merge == MergeDeep && n.Options != nil {
			// true over an options record keeps the options enabled
			if on, ok := over.(bool); ok && on {
				if _, isRecord := base.(map[string]any); isRecord {
					return cloneValue(base)
				}
			}
			return mergeMaps(base, over, func(key string) *Node { return n.Options.Fields[key] })
		}
	case KindStringList:
		if n.Merge == MergeUnion {
			return unionLists(base, over)
		}
	}
	return cloneValue(over)
}

// mergeMaps merges two mappings key by key. When either side is not a
// mapping the document side replaces the base.
func mergeMaps(base, over any, child func(key string) *Node) any {
	bm, bok := base.(map[string]any)
	om, ook := over.(map[string]any)
	if !bok || !ook {
		return cloneValue(over)
	}

	out := cloneMap(bm)
	for _, key := range slices.Sorted(maps.Keys(om)) {
		if existing, ok := out[key]; ok {
			out[key] = mergeValue(child(key), existing, om[key])
			continue
		}
		out[key] = cloneValue(om[key])
	}
	return out
}

// unionLists keeps base order and appends unseen entries from over.
func unionLists(base, over any) any {
	bl, bok := base.([]any)
	ol, ook := over.([]any)
	if !bok || !ook {
		return cloneValue(over)
	}

	out := make([]any, 0, len(bl)+len(ol))
	for _, e := range bl {
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	for _, e := range ol {
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	return out
}
