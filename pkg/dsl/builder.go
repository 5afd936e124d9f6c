package dsl

import (
	"fmt"

	"github.com/aretw0/lattice/pkg/domain"
)

// Builder manages the tree construction.
type Builder struct {
	nodes map[string]*NodeBuilder
	order []string
}

// New creates a new tree builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the tree.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		id:      id,
		style:   domain.Style{},
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Build compiles the tree into a Snapshot. Nodes without a parent become roots;
// roots and siblings keep the order in which they were added.
func (b *Builder) Build() (domain.Snapshot, error) {
	children := make(map[string][]string)
	var roots []string
	for _, id := range b.order {
		nb := b.nodes[id]
		if nb.parent == "" {
			roots = append(roots, id)
			continue
		}
		if _, ok := b.nodes[nb.parent]; !ok {
			return domain.Snapshot{}, fmt.Errorf("node %q: parent %q: %w", id, nb.parent, domain.ErrNodeNotFound)
		}
		children[nb.parent] = append(children[nb.parent], id)
	}

	snap := domain.Snapshot{RootElements: make([]domain.Config, 0, len(roots))}
	visited := make(map[string]bool, len(b.order))
	var build func(id string) domain.Config
	build = func(id string) domain.Config {
		visited[id] = true
		cfg := domain.Config{ID: id, Style: b.nodes[id].style.Clone()}
		for _, c := range children[id] {
			cfg.Children = append(cfg.Children, build(c))
		}
		return cfg
	}
	for _, id := range roots {
		snap.RootElements = append(snap.RootElements, build(id))
	}

	// Whatever is left is only reachable through a parent cycle.
	for _, id := range b.order {
		if !visited[id] {
			return domain.Snapshot{}, fmt.Errorf("node %q: %w", id, domain.ErrCyclicParent)
		}
	}
	return snap, nil
}
