package deskconf

import (
	"fmt"
	"math"
	"strconv"
)

// RootPath names the document root in FieldError paths.
const RootPath = "$"

func joinPath(parent, key string) string {
	if parent == "" || parent == RootPath {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// describe names the kind of a decoded value for error messages.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", t)
	case bool:
		return fmt.Sprintf("boolean %t", t)
	case int:
		return fmt.Sprintf("number %d", t)
	case float64:
		return fmt.Sprintf("number %g", t)
	case map[string]any, Document:
		return "mapping"
	case []any, []string:
		return "list"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// normalize converts decoder-specific shapes into the small set of types
// the schema walks: map[string]any, []any, string, bool, int, float64.
// Integral floats stay float64; the int kind accepts them.
func normalize(v any) any {
	switch t := v.(type) {
	case Document:
		return normalize(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	case int64:
		return int(t)
	case int32:
		return int(t)
	case uint64:
		if t <= math.MaxInt {
			return int(t)
		}
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}

// asInt reports the integer held by v, accepting integral floats that fit
// in an int.
func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		if isWhole(t) && t >= math.MinInt && t < -math.MinInt {
			return int(t), true
		}
	}
	return 0, false
}

// isWhole reports whether v is a number with no fractional part.
func isWhole(v any) bool {
	switch t := v.(type) {
	case int:
		return true
	case float64:
		return t == math.Trunc(t) && !math.IsInf(t, 0)
	}
	return false
}
