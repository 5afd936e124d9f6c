package node

import (
	"io"
	"log/slog"
	"maps"
	"time"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/responsive"
	"github.com/aretw0/lattice/pkg/theme"
	"github.com/aretw0/lattice/pkg/validation"
)

// Node is a styleable element of the inheritance tree.
// A Node is not safe for concurrent use.
type Node struct {
	id         string
	style      domain.Style
	overrides  domain.Style
	metadata   map[string]any
	animations map[string]domain.Animation
	visible    bool
	enabled    bool

	parent   *Node // non-owning
	children []*Node

	listeners      []listener
	nextListenerID uint64

	theme      *theme.Engine
	responsive *responsive.Engine
	validator  *validation.Engine
	hooks      domain.Hooks
	logger     *slog.Logger
	now        func() time.Time
}

// Option defines a functional option for configuring a Node.
type Option func(*Node)

// WithMetadata seeds the node's metadata.
func WithMetadata(metadata map[string]any) Option {
	return func(n *Node) {
		n.metadata = maps.Clone(metadata)
	}
}

// WithTheme injects a theme engine. Share one engine across a tree to switch
// themes for every node at once.
func WithTheme(e *theme.Engine) Option {
	return func(n *Node) {
		n.theme = e
	}
}

// WithResponsive injects a responsive engine.
func WithResponsive(e *responsive.Engine) Option {
	return func(n *Node) {
		n.responsive = e
	}
}

// WithValidator injects a validation engine.
func WithValidator(e *validation.Engine) Option {
	return func(n *Node) {
		n.validator = e
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(n *Node) {
		n.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the node.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Node) {
		n.logger = logger
	}
}

// WithClock overrides the time source used for metadata and event timestamps.
func WithClock(now func() time.Time) Option {
	return func(n *Node) {
		n.now = now
	}
}

// New creates a node. Engines not injected through options are created per node.
func New(id string, s domain.Style, opts ...Option) *Node {
	n := &Node{
		id:         id,
		style:      s.Clone(),
		overrides:  domain.Style{},
		metadata:   map[string]any{},
		animations: map[string]domain.Animation{},
		visible:    true,
		enabled:    true,
	}
	for _, opt := range opts {
		opt(n)
	}

	if n.theme == nil {
		n.theme = theme.New()
	}
	if n.responsive == nil {
		n.responsive = responsive.New()
	}
	if n.validator == nil {
		n.validator = validation.New()
	}
	if n.logger == nil {
		n.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if n.now == nil {
		n.now = time.Now
	}
	return n
}

// shared returns the options that give a new node the same engines,
// hooks, logger and clock as n.
func (n *Node) shared() []Option {
	return []Option{
		WithTheme(n.theme),
		WithResponsive(n.responsive),
		WithValidator(n.validator),
		WithHooks(n.hooks),
		WithLogger(n.logger),
		WithClock(n.now),
	}
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Style returns a copy of the node's own declared style.
func (n *Node) Style() domain.Style { return n.style.Clone() }

// Overrides returns a copy of the node's instance-level overrides.
func (n *Node) Overrides() domain.Style { return n.overrides.Clone() }

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ThemeEngine returns the theme engine used by the node.
func (n *Node) ThemeEngine() *theme.Engine { return n.theme }

// ResponsiveEngine returns the responsive engine used by the node.
func (n *Node) ResponsiveEngine() *responsive.Engine { return n.responsive }

// Validator returns the validation engine used by the node.
func (n *Node) Validator() *validation.Engine { return n.validator }
