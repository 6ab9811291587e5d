// Package fieldpath provides defensive access into loosely typed JSON
// objects, for rendering payloads whose fields may be partially missing.
package fieldpath

import "strings"

// Lookup walks a dot-separated path through nested map[string]any values and
// returns def the moment a segment is missing or the current value cannot be
// descended into. A key present with a nil value is returned as-is.
func Lookup(obj any, path string, def any) any {
	current := obj
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		v, ok := m[key]
		if !ok {
			return def
		}
		current = v
	}
	return current
}

// String looks up path and returns it as a string, or def when the value is
// absent or not a string.
func String(obj any, path, def string) string {
	if v, ok := Lookup(obj, path, def).(string); ok {
		return v
	}
	return def
}

// Bool looks up path and returns it as a bool, or def.
func Bool(obj any, path string, def bool) bool {
	if v, ok := Lookup(obj, path, def).(bool); ok {
		return v
	}
	return def
}

// Float looks up path and returns it as a float64, or def. JSON numbers
// decode as float64, so this covers numeric fields generally.
func Float(obj any, path string, def float64) float64 {
	if v, ok := Lookup(obj, path, def).(float64); ok {
		return v
	}
	return def
}

// Strings looks up path and returns it as a []string, coercing a decoded
// []any element-wise. Non-string elements are dropped.
func Strings(obj any, path string) []string {
	switch v := Lookup(obj, path, nil).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
