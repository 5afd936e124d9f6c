package registry

import (
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/node"
	"github.com/google/uuid"
)

// Registry indexes style nodes by id.
//
// The mutex guards the index only. It is never held while calling into a node,
// so listeners may re-enter the registry. Nodes themselves are not synchronised.
type Registry struct {
	mu       sync.RWMutex
	elements map[string]*node.Node
	order    []string // registration order

	nodeOpts []node.Option
	hooks    domain.Hooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Registry.
type Option func(*Registry)

// WithNodeOptions sets the options applied to every node the registry constructs
// (CreateElement and ImportConfig).
func WithNodeOptions(opts ...node.Option) Option {
	return func(r *Registry) {
		r.nodeOpts = append(r.nodeOpts, opts...)
	}
}

// WithHooks registers observability hooks for registration events.
func WithHooks(hooks domain.Hooks) Option {
	return func(r *Registry) {
		r.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the registry.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		elements: make(map[string]*node.Node),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Register adds a node to the registry.
// If a node with the same id exists, it is overwritten and keeps its position.
func (r *Registry) Register(n *node.Node) {
	r.mu.Lock()
	if _, exists := r.elements[n.ID()]; !exists {
		r.order = append(r.order, n.ID())
	}
	r.elements[n.ID()] = n
	r.mu.Unlock()

	root := n.Parent() == nil
	r.logger.Debug("node registered", "node_id", n.ID(), "root", root)
	r.hooks.Registered(&domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now()},
		NodeID:    n.ID(),
		Root:      root,
	})
}

// Unregister detaches the node from its parent and removes it, together with
// every registered descendant, from the index. Unknown ids are a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	n, ok := r.elements[id]
	var removed []*node.Node
	if ok {
		removed = append(removed, n)
		for _, d := range n.Descendants() {
			if r.elements[d.ID()] == d {
				removed = append(removed, d)
			}
		}
		for _, rm := range removed {
			delete(r.elements, rm.ID())
		}
		r.order = slices.DeleteFunc(r.order, func(s string) bool {
			_, kept := r.elements[s]
			return !kept
		})
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	root := n.Parent() == nil
	n.Detach()
	for _, rm := range removed {
		r.logger.Debug("node unregistered", "node_id", rm.ID())
		r.hooks.Unregistered(&domain.NodeEvent{
			EventBase: domain.EventBase{Timestamp: time.Now()},
			NodeID:    rm.ID(),
			Root:      rm == n && root,
		})
	}
}

// Element looks up a node by id.
func (r *Registry) Element(id string) (*node.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.elements[id]
	return n, ok
}

// FindElement is an alias of Element.
func (r *Registry) FindElement(id string) (*node.Node, bool) {
	return r.Element(id)
}

// CreateElement constructs a node with the registry's node options and registers it.
// An empty id is replaced by a random UUID.
func (r *Registry) CreateElement(id string, s domain.Style) *node.Node {
	if id == "" {
		id = uuid.NewString()
	}
	n := node.New(id, s, r.nodeOpts...)
	r.Register(n)
	return n
}

// AllElements returns every registered node in registration order.
func (r *Registry) AllElements() []*node.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*node.Node, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.elements[id])
	}
	return out
}

// RootElements returns the registered nodes that currently have no parent,
// in registration order. Root status is evaluated at call time.
func (r *Registry) RootElements() []*node.Node {
	all := r.AllElements()
	return slices.DeleteFunc(all, func(n *node.Node) bool { return n.Parent() != nil })
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elements)
}

// UpdateParentStyle calls UpdateStyle on the node. Unknown ids are a no-op.
func (r *Registry) UpdateParentStyle(id string, partial domain.Style) {
	if n, ok := r.Element(id); ok {
		n.UpdateStyle(partial)
	}
}

// OverrideChildStyle calls OverrideStyle on the node. Unknown ids are a no-op.
func (r *Registry) OverrideChildStyle(id string, partial domain.Style) {
	if n, ok := r.Element(id); ok {
		n.OverrideStyle(partial)
	}
}

// ResetChildOverrides calls ResetOverrides on the node. Unknown ids are a no-op.
func (r *Registry) ResetChildOverrides(id string) {
	if n, ok := r.Element(id); ok {
		n.ResetOverrides()
	}
}

// ComputedStyle returns the computed style of the node.
func (r *Registry) ComputedStyle(id string) (domain.Style, bool) {
	n, ok := r.Element(id)
	if !ok {
		return nil, false
	}
	return n.ComputedStyle(), true
}

// Clear empties the registry without firing hooks or touching the nodes.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elements = make(map[string]*node.Node)
	r.order = nil
}

// ExportConfig serialises the root forest.
func (r *Registry) ExportConfig() domain.Snapshot {
	roots := r.RootElements()
	snap := domain.Snapshot{RootElements: make([]domain.Config, 0, len(roots))}
	for _, n := range roots {
		snap.RootElements = append(snap.RootElements, n.ToConfig())
	}
	return snap
}

// ImportConfig clears the registry, then rebuilds each tree of snap and
// registers every node of it, roots first, descendants in pre-order.
func (r *Registry) ImportConfig(snap domain.Snapshot) {
	r.Clear()
	for _, cfg := range snap.RootElements {
		root := node.FromConfig(cfg, r.nodeOpts...)
		r.Register(root)
		for _, d := range root.Descendants() {
			r.Register(d)
		}
	}
	r.logger.Info("snapshot imported", "roots", len(snap.RootElements), "nodes", r.Len())
}
