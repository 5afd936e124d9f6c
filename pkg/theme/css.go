package theme

import (
	"fmt"
	"sort"
	"strings"
)

// GenerateCSSVariables renders the active theme as a ":root" custom property block.
// Entries within each group are sorted by key.
func (e *Engine) GenerateCSSVariables() string {
	t := e.CurrentTheme()
	p := e.cssPrefix

	var vars []string
	vars = appendGroup(vars, p+"-color", t.Colors)
	vars = appendGroup(vars, p+"-spacing", t.Spacing)
	vars = append(vars, fmt.Sprintf("--%s-font-family: %s;", p, t.Typography.FontFamily))
	vars = appendGroup(vars, p+"-font-size", t.Typography.FontSize)
	vars = appendGroup(vars, p+"-font-weight", t.Typography.FontWeight)
	vars = appendGroup(vars, p+"-border-radius", t.BorderRadius)
	vars = appendGroup(vars, p+"-shadow", t.Shadows)

	return ":root {\n  " + strings.Join(vars, "\n  ") + "\n}"
}

func appendGroup[V any](vars []string, prefix string, group map[string]V) []string {
	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		vars = append(vars, fmt.Sprintf("--%s-%s: %v;", prefix, k, group[k]))
	}
	return vars
}
