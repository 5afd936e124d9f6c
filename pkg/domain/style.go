package domain

import "sort"

// Style maps logical style property names to values.
// Values are strings, numbers, or nested mappings (e.g. the responsive envelope).
type Style map[string]any

// Clone returns a deep copy of the style. Nested mappings are copied,
// every other value (including slices) is copied by reference.
func (s Style) Clone() Style {
	if s == nil {
		return Style{}
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

// Keys returns the property names in ascending order.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneValue(v any) any {
	switch m := v.(type) {
	case Style:
		return m.Clone()
	case map[string]any:
		return map[string]any(Style(m).Clone())
	case map[string]Style:
		out := make(map[string]Style, len(m))
		for k, inner := range m {
			out[k] = inner.Clone()
		}
		return out
	case []any:
		out := make([]any, len(m))
		for i, item := range m {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
