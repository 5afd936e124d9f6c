package domain

// Theme is a named set of design tokens. Token strings such as "$colors.primary"
// resolve against the dotted paths of Values.
type Theme struct {
	Name         string            `json:"name" yaml:"name" mapstructure:"name"`
	Colors       map[string]string `json:"colors" yaml:"colors" mapstructure:"colors"`
	Typography   Typography        `json:"typography" yaml:"typography" mapstructure:"typography"`
	Spacing      map[string]string `json:"spacing" yaml:"spacing" mapstructure:"spacing"`
	Breakpoints  map[string]string `json:"breakpoints" yaml:"breakpoints" mapstructure:"breakpoints"`
	BorderRadius map[string]string `json:"borderRadius" yaml:"borderRadius" mapstructure:"borderRadius"`
	Shadows      map[string]string `json:"shadows" yaml:"shadows" mapstructure:"shadows"`
}

// Typography groups the font tokens of a theme.
type Typography struct {
	FontFamily string            `json:"fontFamily" yaml:"fontFamily" mapstructure:"fontFamily"`
	FontSize   map[string]string `json:"fontSize" yaml:"fontSize" mapstructure:"fontSize"`
	FontWeight map[string]int    `json:"fontWeight" yaml:"fontWeight" mapstructure:"fontWeight"`
}

// Values returns the theme as a nested mapping keyed by token path segments.
func (t Theme) Values() map[string]any {
	return map[string]any{
		"name":   t.Name,
		"colors": stringLeaves(t.Colors),
		"typography": map[string]any{
			"fontFamily": t.Typography.FontFamily,
			"fontSize":   stringLeaves(t.Typography.FontSize),
			"fontWeight": intLeaves(t.Typography.FontWeight),
		},
		"spacing":      stringLeaves(t.Spacing),
		"breakpoints":  stringLeaves(t.Breakpoints),
		"borderRadius": stringLeaves(t.BorderRadius),
		"shadows":      stringLeaves(t.Shadows),
	}
}

func stringLeaves(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func intLeaves(m map[string]int) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DefaultTheme returns the built-in "default" theme.
func DefaultTheme() Theme {
	return Theme{
		Name: DefaultThemeName,
		Colors: map[string]string{
			"primary":       "#3b82f6",
			"secondary":     "#8b5cf6",
			"background":    "#ffffff",
			"surface":       "#f8fafc",
			"text":          "#1f2937",
			"textSecondary": "#6b7280",
			"border":        "#e5e7eb",
			"error":         "#ef4444",
			"warning":       "#f59e0b",
			"success":       "#10b981",
			"info":          "#06b6d4",
		},
		Typography: Typography{
			FontFamily: "system-ui, -apple-system, sans-serif",
			FontSize: map[string]string{
				"xs":   "0.75rem",
				"sm":   "0.875rem",
				"base": "1rem",
				"lg":   "1.125rem",
				"xl":   "1.25rem",
				"2xl":  "1.5rem",
				"3xl":  "1.875rem",
			},
			FontWeight: map[string]int{
				"light":    300,
				"normal":   400,
				"medium":   500,
				"semibold": 600,
				"bold":     700,
			},
		},
		Spacing: map[string]string{
			"xs":  "0.25rem",
			"sm":  "0.5rem",
			"md":  "1rem",
			"lg":  "1.5rem",
			"xl":  "2rem",
			"2xl": "3rem",
		},
		Breakpoints: map[string]string{
			"sm":  "640px",
			"md":  "768px",
			"lg":  "1024px",
			"xl":  "1280px",
			"2xl": "1536px",
		},
		BorderRadius: map[string]string{
			"none": "0",
			"sm":   "0.125rem",
			"md":   "0.375rem",
			"lg":   "0.5rem",
			"xl":   "0.75rem",
			"full": "9999px",
		},
		Shadows: map[string]string{
			"sm": "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			"md": "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
			"lg": "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
			"xl": "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
		},
	}
}
