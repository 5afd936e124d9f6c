package theme

import (
	"errors"
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func darkTheme() domain.Theme {
	t := domain.DefaultTheme()
	t.Name = "dark"
	t.Colors = map[string]string{"primary": "#60a5fa", "background": "#111827"}
	return t
}

func TestApplyThemeVariables(t *testing.T) {
	e := New()

	got := e.ApplyThemeVariables(domain.Style{
		"color":      "$colors.primary",
		"fontWeight": "$typography.fontWeight.bold",
		"fontSize":   "$typography.fontSize.lg",
		"missing":    "$colors.doesNotExist",
		"tooDeep":    "$colors.primary.shade",
		"literal":    "plain",
		"bare":       "$",
		"group":      "$colors",
		"subgroup":   "$typography.fontSize",
		"number":     4,
	})

	assert.Equal(t, "#3b82f6", got["color"])
	assert.Equal(t, 700, got["fontWeight"])
	assert.Equal(t, "1.125rem", got["fontSize"])
	assert.Equal(t, "$colors.doesNotExist", got["missing"])
	assert.Equal(t, "$colors.primary.shade", got["tooDeep"])
	assert.Equal(t, "plain", got["literal"])
	assert.Equal(t, "$", got["bare"])
	assert.Equal(t, "$colors", got["group"])
	assert.Equal(t, "$typography.fontSize", got["subgroup"])
	assert.Equal(t, 4, got["number"])
}

func TestApplyThemeVariables_DoesNotMutateInput(t *testing.T) {
	e := New()
	in := domain.Style{"color": "$colors.primary"}
	_ = e.ApplyThemeVariables(in)
	assert.Equal(t, "$colors.primary", in["color"])
}

func TestSetCurrentTheme(t *testing.T) {
	var events []*domain.ThemeEvent
	e := New(WithHooks(domain.Hooks{
		OnThemeChange: func(ev *domain.ThemeEvent) { events = append(events, ev) },
	}))

	err := e.SetCurrentTheme("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTheme))
	var invalid *InvalidThemeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "nope", invalid.Name)
	assert.Equal(t, domain.DefaultThemeName, e.CurrentThemeName(), "selection unchanged on failure")
	assert.Empty(t, events)

	e.RegisterTheme(darkTheme())
	require.NoError(t, e.SetCurrentTheme("dark"))
	assert.Equal(t, "dark", e.CurrentThemeName())
	assert.Equal(t, "#60a5fa", e.ApplyThemeVariables(domain.Style{"c": "$colors.primary"})["c"])
	require.Len(t, events, 1)
	assert.Equal(t, "default", events[0].Previous)
	assert.Equal(t, "dark", events[0].Current)
}

func TestRemoveTheme_FallsBackToDefault(t *testing.T) {
	e := New(WithThemes(darkTheme()))
	require.NoError(t, e.SetCurrentTheme("dark"))

	assert.False(t, e.RemoveTheme(domain.DefaultThemeName))
	assert.False(t, e.RemoveTheme("ghost"))
	assert.True(t, e.RemoveTheme("dark"))

	assert.Equal(t, domain.DefaultThemeName, e.CurrentTheme().Name)
	assert.Equal(t, []string{"default"}, e.AvailableThemes())
}

func TestRegisterTheme_Overwrites(t *testing.T) {
	e := New()
	custom := domain.Theme{Name: "default", Colors: map[string]string{"primary": "black"}}
	e.RegisterTheme(custom)

	v, ok := e.Lookup("colors.primary")
	require.True(t, ok)
	assert.Equal(t, "black", v)

	_, ok = e.Lookup("spacing.md")
	assert.False(t, ok, "incomplete themes are accepted as-is")
}

func TestCustomProperties(t *testing.T) {
	e := New()
	_, ok := e.CustomProperty("gutter")
	assert.False(t, ok)

	e.SetCustomProperty("gutter", 12)
	v, ok := e.CustomProperty("gutter")
	assert.True(t, ok)
	assert.Equal(t, 12, v)
}

func TestGenerateCSSVariables(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "default_css_variables", []byte(New().GenerateCSSVariables()))
}

func TestGenerateCSSVariables_Prefix(t *testing.T) {
	css := New(WithCSSPrefix("qe")).GenerateCSSVariables()
	assert.Contains(t, css, "--qe-color-primary: #3b82f6;")
	assert.Contains(t, css, "--qe-font-weight-bold: 700;")
}
