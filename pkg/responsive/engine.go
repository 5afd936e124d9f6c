package responsive

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"sort"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/ports"
	"github.com/aretw0/lattice/pkg/style"
)

// FallbackPolicy selects the breakpoint reported when no boundary matches.
type FallbackPolicy int

const (
	// FallbackSmallest reports the smallest configured breakpoint.
	FallbackSmallest FallbackPolicy = iota
	// FallbackDefault reports Config.DefaultBreakpoint when it is configured,
	// otherwise the smallest breakpoint.
	FallbackDefault
)

// Config is the breakpoint table.
type Config struct {
	Breakpoints       map[string]string `json:"breakpoints" yaml:"breakpoints"`
	DefaultBreakpoint string            `json:"defaultBreakpoint" yaml:"defaultBreakpoint"`
}

// DefaultConfig returns the standard sm/md/lg/xl/2xl table with "md" as default.
func DefaultConfig() Config {
	return Config{
		Breakpoints: map[string]string{
			"sm":  "640px",
			"md":  "768px",
			"lg":  "1024px",
			"xl":  "1280px",
			"2xl": "1536px",
		},
		DefaultBreakpoint: "md",
	}
}

// Engine resolves the active breakpoint and applies responsive envelopes.
type Engine struct {
	cfg       Config
	ranked    []string // ascending by boundary
	matcher   ports.BoundaryMatcher
	fallback  FallbackPolicy
	last      string
	listeners []changeListener
	nextID    uint64
	logger    *slog.Logger
}

type changeListener struct {
	id uint64
	fn func(breakpoint string)
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithConfig merges cfg into the default table: a non-nil breakpoint map replaces
// the defaults and a non-empty default name replaces "md".
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = mergeConfig(e.cfg, cfg)
	}
}

// WithBreakpoints replaces the breakpoint table.
func WithBreakpoints(breakpoints map[string]string) Option {
	return func(e *Engine) {
		e.cfg.Breakpoints = maps.Clone(breakpoints)
	}
}

// WithDefaultBreakpoint sets the default breakpoint name.
func WithDefaultBreakpoint(name string) Option {
	return func(e *Engine) {
		e.cfg.DefaultBreakpoint = name
	}
}

// WithMatcher injects the boundary matcher. Without one, no boundary matches.
func WithMatcher(m ports.BoundaryMatcher) Option {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithFallback sets the fallback policy (default: FallbackSmallest).
func WithFallback(p FallbackPolicy) Option {
	return func(e *Engine) {
		e.fallback = p
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine with DefaultConfig and the given options applied.
func New(opts ...Option) *Engine {
	e := &Engine{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.rank()
	e.last = e.CurrentBreakpoint()
	return e
}

func mergeConfig(base, update Config) Config {
	if update.Breakpoints != nil {
		base.Breakpoints = maps.Clone(update.Breakpoints)
	}
	if update.DefaultBreakpoint != "" {
		base.DefaultBreakpoint = update.DefaultBreakpoint
	}
	return base
}

func (e *Engine) rank() {
	names := slices.Collect(maps.Keys(e.cfg.Breakpoints))
	sort.Slice(names, func(i, j int) bool {
		a, b := leadingInt(e.cfg.Breakpoints[names[i]]), leadingInt(e.cfg.Breakpoints[names[j]])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
	e.ranked = names
}

// CurrentBreakpoint returns the largest breakpoint whose boundary matches,
// or the fallback breakpoint when none does.
func (e *Engine) CurrentBreakpoint() string {
	for i := len(e.ranked) - 1; i >= 0; i-- {
		name := e.ranked[i]
		if e.matches(name) {
			return name
		}
	}
	return e.fallbackBreakpoint()
}

func (e *Engine) fallbackBreakpoint() string {
	if e.fallback == FallbackDefault {
		if _, ok := e.cfg.Breakpoints[e.cfg.DefaultBreakpoint]; ok {
			return e.cfg.DefaultBreakpoint
		}
	}
	if len(e.ranked) == 0 {
		return e.cfg.DefaultBreakpoint
	}
	return e.ranked[0]
}

func (e *Engine) matches(name string) bool {
	boundary, ok := e.cfg.Breakpoints[name]
	return ok && e.matcher != nil && e.matcher.Matches(boundary)
}

// IsBreakpointActive reports whether the boundary of name currently matches.
func (e *Engine) IsBreakpointActive(name string) bool {
	return e.matches(name)
}

// ResponsiveStyles returns a copy of s with the envelope overlays cascaded up to
// the active breakpoint. The envelope key is removed from the result.
func (e *Engine) ResponsiveStyles(s domain.Style) domain.Style {
	out := style.Merge(s)
	envelope, ok := style.AsMap(s[domain.EnvelopeKey])
	delete(out, domain.EnvelopeKey)
	if !ok {
		return out
	}

	current := slices.Index(e.ranked, e.CurrentBreakpoint())
	for i := 0; i <= current; i++ {
		if overlay, ok := style.AsMap(envelope[e.ranked[i]]); ok {
			for k, v := range overlay {
				out[k] = v
			}
		}
	}
	return out
}

// CreateResponsiveStyles returns a copy of base whose envelope is set to overlays.
// Any envelope already on base is replaced, not merged.
func (e *Engine) CreateResponsiveStyles(base domain.Style, overlays map[string]domain.Style) domain.Style {
	out := style.Merge(base)
	envelope := make(map[string]any, len(overlays))
	for bp, overlay := range overlays {
		envelope[bp] = overlay.Clone()
	}
	out[domain.EnvelopeKey] = envelope
	return out
}

// OnBreakpointChange registers fn to be called by Refresh when the active
// breakpoint changes. The returned function unregisters it.
func (e *Engine) OnBreakpointChange(fn func(breakpoint string)) func() {
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, changeListener{id: id, fn: fn})
	return func() {
		e.listeners = slices.DeleteFunc(e.listeners, func(l changeListener) bool { return l.id == id })
	}
}

// Refresh re-evaluates the active breakpoint and notifies listeners if it changed.
func (e *Engine) Refresh() {
	current := e.CurrentBreakpoint()
	if current == e.last {
		return
	}
	e.logger.Debug("breakpoint changed", "from", e.last, "to", current)
	e.last = current
	for _, l := range slices.Clone(e.listeners) {
		l.fn(current)
	}
}

// SetMatcher replaces the boundary matcher and refreshes.
func (e *Engine) SetMatcher(m ports.BoundaryMatcher) {
	e.matcher = m
	e.Refresh()
}

// BreakpointValue returns the boundary configured for name.
func (e *Engine) BreakpointValue(name string) (string, bool) {
	v, ok := e.cfg.Breakpoints[name]
	return v, ok
}

// Breakpoints returns a copy of the breakpoint table.
func (e *Engine) Breakpoints() map[string]string {
	return maps.Clone(e.cfg.Breakpoints)
}

// SortedBreakpoints returns breakpoint names in ascending boundary order.
func (e *Engine) SortedBreakpoints() []string {
	return slices.Clone(e.ranked)
}

// DefaultBreakpoint returns the configured default breakpoint name.
func (e *Engine) DefaultBreakpoint() string {
	return e.cfg.DefaultBreakpoint
}

// HasBreakpoint reports whether name is configured.
func (e *Engine) HasBreakpoint(name string) bool {
	_, ok := e.cfg.Breakpoints[name]
	return ok
}

// UpdateConfig merges cfg like WithConfig, then re-ranks and refreshes.
func (e *Engine) UpdateConfig(cfg Config) {
	e.cfg = mergeConfig(e.cfg, cfg)
	e.rank()
	e.Refresh()
}

// AddBreakpoint adds or replaces a breakpoint.
func (e *Engine) AddBreakpoint(name, boundary string) {
	if e.cfg.Breakpoints == nil {
		e.cfg.Breakpoints = make(map[string]string)
	}
	e.cfg.Breakpoints[name] = boundary
	e.rank()
	e.Refresh()
}

// RemoveBreakpoint deletes a breakpoint. Unknown names are a no-op.
func (e *Engine) RemoveBreakpoint(name string) {
	delete(e.cfg.Breakpoints, name)
	e.rank()
	e.Refresh()
}

// NextBreakpoint returns the breakpoint ranked directly above name.
func (e *Engine) NextBreakpoint(name string) (string, bool) {
	i := slices.Index(e.ranked, name)
	if i < 0 || i+1 >= len(e.ranked) {
		return "", false
	}
	return e.ranked[i+1], true
}

// PreviousBreakpoint returns the breakpoint ranked directly below name.
func (e *Engine) PreviousBreakpoint(name string) (string, bool) {
	i := slices.Index(e.ranked, name)
	if i <= 0 {
		return "", false
	}
	return e.ranked[i-1], true
}
