package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleClone_IsDeep(t *testing.T) {
	tags := []any{"a"}
	s := Style{
		"color": "red",
		"font":  map[string]any{"size": 12},
		EnvelopeKey: map[string]Style{
			"md": {"color": "blue"},
		},
		"tags": tags,
	}

	c := s.Clone()
	assert.Equal(t, s, c)

	c["font"].(map[string]any)["size"] = 14
	c[EnvelopeKey].(map[string]Style)["md"]["color"] = "green"
	assert.Equal(t, 12, s["font"].(map[string]any)["size"])
	assert.Equal(t, "blue", s[EnvelopeKey].(map[string]Style)["md"]["color"])

	assert.Equal(t, Style{}, Style(nil).Clone())
}

func TestStyleKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Style{"c": 1, "a": 2, "b": 3}.Keys())
	assert.Empty(t, Style{}.Keys())
}

func TestThemeValues(t *testing.T) {
	v := DefaultTheme().Values()

	assert.Equal(t, DefaultThemeName, v["name"])
	assert.Equal(t, "#3b82f6", v["colors"].(map[string]any)["primary"])
	typo := v["typography"].(map[string]any)
	assert.Equal(t, 700, typo["fontWeight"].(map[string]any)["bold"])
	assert.Equal(t, "1rem", typo["fontSize"].(map[string]any)["base"])
}

func TestChainHooks(t *testing.T) {
	var calls []string
	first := Hooks{OnStyleChange: func(*StyleEvent) { calls = append(calls, "first") }}
	second := Hooks{
		OnStyleChange: func(*StyleEvent) { calls = append(calls, "second") },
		OnRegister:    func(*NodeEvent) { calls = append(calls, "register") },
	}

	h := ChainHooks(first, Hooks{}, second)
	h.StyleChanged(&StyleEvent{})
	h.Registered(&NodeEvent{})
	h.Unregistered(&NodeEvent{})
	h.ThemeChanged(&ThemeEvent{})

	assert.Equal(t, []string{"first", "second", "register"}, calls)
}
