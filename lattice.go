package lattice

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/node"
	"github.com/aretw0/lattice/pkg/ports"
	"github.com/aretw0/lattice/pkg/registry"
	"github.com/aretw0/lattice/pkg/responsive"
	"github.com/aretw0/lattice/pkg/theme"
	"github.com/aretw0/lattice/pkg/validation"
)

// Workspace is the high-level entry point for the Lattice library.
// It owns a registry whose nodes all share one theme, responsive and
// validation engine, so switching the theme or the viewport affects every node.
type Workspace struct {
	registry   *registry.Registry
	theme      *theme.Engine
	responsive *responsive.Engine
	validator  *validation.Engine

	themes         []domain.Theme
	breakpoints    *responsive.Config
	matcher        ports.BoundaryMatcher
	fallback       responsive.FallbackPolicy
	validationOpts []validation.Option
	cssPrefix      string
	hooks          domain.Hooks
	logger         *slog.Logger
}

// Option defines a functional option for configuring the Workspace.
type Option func(*Workspace)

// WithLogger sets a custom structured logger, shared by every engine.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workspace) {
		w.logger = logger
	}
}

// WithHooks registers observability hooks on the registry, its nodes and the theme engine.
func WithHooks(hooks domain.Hooks) Option {
	return func(w *Workspace) {
		w.hooks = hooks
	}
}

// WithThemes registers additional themes.
func WithThemes(themes ...domain.Theme) Option {
	return func(w *Workspace) {
		w.themes = append(w.themes, themes...)
	}
}

// WithCSSPrefix sets the CSS variable prefix (default: "lattice").
func WithCSSPrefix(prefix string) Option {
	return func(w *Workspace) {
		w.cssPrefix = prefix
	}
}

// WithBreakpoints merges cfg into the default breakpoint table.
func WithBreakpoints(cfg responsive.Config) Option {
	return func(w *Workspace) {
		w.breakpoints = &cfg
	}
}

// WithMatcher sets the boundary matcher that decides which breakpoints are active.
func WithMatcher(m ports.BoundaryMatcher) Option {
	return func(w *Workspace) {
		w.matcher = m
	}
}

// WithFallback sets the breakpoint fallback policy.
func WithFallback(p responsive.FallbackPolicy) Option {
	return func(w *Workspace) {
		w.fallback = p
	}
}

// WithValidation forwards options to the validation engine.
func WithValidation(opts ...validation.Option) Option {
	return func(w *Workspace) {
		w.validationOpts = append(w.validationOpts, opts...)
	}
}

// New initializes a Workspace.
func New(opts ...Option) *Workspace {
	w := &Workspace{}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	themeOpts := []theme.Option{
		theme.WithThemes(w.themes...),
		theme.WithHooks(w.hooks),
		theme.WithLogger(w.logger),
	}
	if w.cssPrefix != "" {
		themeOpts = append(themeOpts, theme.WithCSSPrefix(w.cssPrefix))
	}
	w.theme = theme.New(themeOpts...)

	respOpts := []responsive.Option{
		responsive.WithMatcher(w.matcher),
		responsive.WithFallback(w.fallback),
		responsive.WithLogger(w.logger),
	}
	if w.breakpoints != nil {
		respOpts = append(respOpts, responsive.WithConfig(*w.breakpoints))
	}
	w.responsive = responsive.New(respOpts...)

	w.validator = validation.New(append(w.validationOpts, validation.WithLogger(w.logger))...)

	w.registry = registry.NewRegistry(
		registry.WithHooks(w.hooks),
		registry.WithLogger(w.logger),
		registry.WithNodeOptions(
			node.WithTheme(w.theme),
			node.WithResponsive(w.responsive),
			node.WithValidator(w.validator),
			node.WithHooks(w.hooks),
			node.WithLogger(w.logger),
		),
	)
	return w
}

// Registry returns the node registry.
func (w *Workspace) Registry() *registry.Registry { return w.registry }

// Theme returns the shared theme engine.
func (w *Workspace) Theme() *theme.Engine { return w.theme }

// Responsive returns the shared responsive engine.
func (w *Workspace) Responsive() *responsive.Engine { return w.responsive }

// Validator returns the shared validation engine.
func (w *Workspace) Validator() *validation.Engine { return w.validator }

// CreateElement creates and registers a node. An empty id is replaced by a UUID.
func (w *Workspace) CreateElement(id string, s domain.Style) *node.Node {
	return w.registry.CreateElement(id, s)
}

// CreateChild creates and registers a node below the node parentID.
// An id that is already registered, the parent's included, is rejected.
func (w *Workspace) CreateChild(parentID, id string, s domain.Style) (*node.Node, error) {
	parent, ok := w.registry.Element(parentID)
	if !ok {
		return nil, fmt.Errorf("parent %q: %w", parentID, domain.ErrNodeNotFound)
	}
	if _, exists := w.registry.Element(id); exists {
		return nil, fmt.Errorf("child %q: %w", id, domain.ErrNodeExists)
	}
	child := w.registry.CreateElement(id, s)
	if err := parent.AddChild(child); err != nil {
		w.registry.Unregister(child.ID())
		return nil, err
	}
	return child, nil
}

// Element looks up a node by id.
func (w *Workspace) Element(id string) (*node.Node, bool) {
	return w.registry.Element(id)
}

// ComputedStyle returns the computed style of the node id.
func (w *Workspace) ComputedStyle(id string) (domain.Style, bool) {
	return w.registry.ComputedStyle(id)
}

// StyleHash returns the computed-style hash of the node id.
func (w *Workspace) StyleHash(id string) (string, error) {
	n, ok := w.registry.Element(id)
	if !ok {
		return "", fmt.Errorf("%q: %w", id, domain.ErrNodeNotFound)
	}
	return n.StyleHash()
}

// SetTheme switches the shared theme.
func (w *Workspace) SetTheme(name string) error {
	return w.theme.SetCurrentTheme(name)
}

// SetMatcher replaces the boundary matcher, e.g. after a viewport resize.
func (w *Workspace) SetMatcher(m ports.BoundaryMatcher) {
	w.responsive.SetMatcher(m)
}

// Import replaces the registry content with snap.
func (w *Workspace) Import(snap domain.Snapshot) {
	w.registry.ImportConfig(snap)
}

// Export serialises the registry's root forest.
func (w *Workspace) Export() domain.Snapshot {
	return w.registry.ExportConfig()
}

// Validate validates the own style of node id.
func (w *Workspace) Validate(id string) (domain.ValidationResult, error) {
	n, ok := w.registry.Element(id)
	if !ok {
		return domain.ValidationResult{}, fmt.Errorf("%q: %w", id, domain.ErrNodeNotFound)
	}
	return n.ValidateStyle(), nil
}

// ValidateAll validates the own style of every registered node, keyed by id.
func (w *Workspace) ValidateAll() map[string]domain.ValidationResult {
	out := make(map[string]domain.ValidationResult, w.registry.Len())
	for _, n := range w.registry.AllElements() {
		out[n.ID()] = n.ValidateStyle()
	}
	return out
}
