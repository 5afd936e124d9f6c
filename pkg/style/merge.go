package style

import "github.com/aretw0/lattice/pkg/domain"

// Merge returns a new style with every key of the layers applied in order.
// Later layers win on key collision; nil layers are skipped.
func Merge(layers ...domain.Style) domain.Style {
	size := 0
	for _, l := range layers {
		size += len(l)
	}
	out := make(domain.Style, size)
	for _, l := range layers {
		for k, v := range l {
			out[k] = v
		}
	}
	return out
}

// DeepMerge merges source into a copy of target. Nested mappings are merged
// recursively; every other value, slices included, replaces the target value.
func DeepMerge(target, source domain.Style) domain.Style {
	out := Merge(target)
	for k, v := range source {
		if sub, ok := AsMap(v); ok && sub != nil {
			base, _ := AsMap(out[k])
			out[k] = DeepMerge(base, sub)
			continue
		}
		out[k] = v
	}
	return out
}

// AsMap reports whether v is a plain mapping and returns it as a Style.
// The returned style shares storage with v.
func AsMap(v any) (domain.Style, bool) {
	switch m := v.(type) {
	case domain.Style:
		return m, true
	case map[string]any:
		return domain.Style(m), true
	case map[string]domain.Style:
		out := make(domain.Style, len(m))
		for k, inner := range m {
			out[k] = inner
		}
		return out, true
	default:
		return nil, false
	}
}
