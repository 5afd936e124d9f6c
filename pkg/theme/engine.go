package theme

import (
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/lattice/pkg/domain"
)

// Engine is a registry of themes with a single active selection.
type Engine struct {
	themes    map[string]domain.Theme
	current   string
	custom    map[string]any
	cssPrefix string
	hooks     domain.Hooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithThemes registers additional themes at construction.
func WithThemes(themes ...domain.Theme) Option {
	return func(e *Engine) {
		for _, t := range themes {
			e.themes[t.Name] = t
		}
	}
}

// WithCSSPrefix sets the variable prefix used by GenerateCSSVariables (default: "lattice").
func WithCSSPrefix(prefix string) Option {
	return func(e *Engine) {
		e.cssPrefix = prefix
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine holding the default theme as the active selection.
func New(opts ...Option) *Engine {
	e := &Engine{
		themes:    map[string]domain.Theme{domain.DefaultThemeName: domain.DefaultTheme()},
		current:   domain.DefaultThemeName,
		custom:    make(map[string]any),
		cssPrefix: "lattice",
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// RegisterTheme adds or replaces a theme by name. Completeness is not checked.
func (e *Engine) RegisterTheme(t domain.Theme) {
	e.themes[t.Name] = t
	e.logger.Debug("theme registered", "theme", t.Name)
}

// RemoveTheme deletes a theme. The default theme cannot be removed.
// Removing the active theme makes CurrentTheme fall back to the default.
func (e *Engine) RemoveTheme(name string) bool {
	if name == domain.DefaultThemeName {
		return false
	}
	if _, ok := e.themes[name]; !ok {
		return false
	}
	delete(e.themes, name)
	return true
}

// SetCurrentTheme switches the active theme.
// Returns *InvalidThemeError and leaves the selection unchanged if name is unknown.
func (e *Engine) SetCurrentTheme(name string) error {
	if _, ok := e.themes[name]; !ok {
		return &InvalidThemeError{Name: name}
	}
	previous := e.current
	e.current = name
	e.logger.Info("theme switched", "from", previous, "to", name)
	e.hooks.ThemeChanged(&domain.ThemeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now()},
		Previous:  previous,
		Current:   name,
	})
	return nil
}

// CurrentTheme returns the active theme, or the default theme if the active
// one was removed.
func (e *Engine) CurrentTheme() domain.Theme {
	if t, ok := e.themes[e.current]; ok {
		return t
	}
	return e.themes[domain.DefaultThemeName]
}

// CurrentThemeName returns the name of the theme CurrentTheme resolves to.
func (e *Engine) CurrentThemeName() string {
	return e.CurrentTheme().Name
}

// Theme returns a registered theme by name.
func (e *Engine) Theme(name string) (domain.Theme, bool) {
	t, ok := e.themes[name]
	return t, ok
}

// AvailableThemes returns the registered theme names in ascending order.
func (e *Engine) AvailableThemes() []string {
	names := make([]string, 0, len(e.themes))
	for name := range e.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyThemeVariables returns a copy of s with every token that resolves to a
// single theme value replaced by it. Tokens naming a whole group are kept.
func (e *Engine) ApplyThemeVariables(s domain.Style) domain.Style {
	values := e.CurrentTheme().Values()
	out := make(domain.Style, len(s))
	for k, v := range s {
		out[k] = v
		str, ok := v.(string)
		if !ok || !strings.HasPrefix(str, domain.TokenPrefix) {
			continue
		}
		resolved, found := lookup(values, strings.TrimPrefix(str, domain.TokenPrefix))
		switch {
		case !found:
			e.logger.Debug("unresolved theme token", "property", k, "token", str)
		case isGroup(resolved):
			e.logger.Debug("theme token names a group", "property", k, "token", str)
		default:
			out[k] = resolved
		}
	}
	return out
}

// CreateThemedStyle is an alias of ApplyThemeVariables.
func (e *Engine) CreateThemedStyle(base domain.Style) domain.Style {
	return e.ApplyThemeVariables(base)
}

// Lookup resolves a dotted path against the active theme.
func (e *Engine) Lookup(path string) (any, bool) {
	return lookup(e.CurrentTheme().Values(), path)
}

// SetCustomProperty stores an auxiliary value independent of themes.
func (e *Engine) SetCustomProperty(key string, value any) {
	e.custom[key] = value
}

// CustomProperty returns an auxiliary value.
func (e *Engine) CustomProperty(key string) (any, bool) {
	v, ok := e.custom[key]
	return v, ok
}

func isGroup(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func lookup(values map[string]any, path string) (any, bool) {
	var current any = values
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := m[key]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}
