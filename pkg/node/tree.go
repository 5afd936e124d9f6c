package node

import (
	"slices"

	"github.com/aretw0/lattice/pkg/domain"
)

// SetParent moves n under parent, detaching it from its current parent first.
// A nil parent detaches n. SetParent fails with a *CyclicParentError, leaving
// the tree untouched, when parent is n or one of its descendants.
func (n *Node) SetParent(parent *Node) error {
	if parent == nil {
		n.Detach()
		return nil
	}
	for p := parent; p != nil; p = p.parent {
		if p == n {
			return &CyclicParentError{NodeID: n.id, ParentID: parent.id}
		}
	}

	n.Detach()
	n.parent = parent
	parent.children = append(parent.children, n)
	n.logger.Debug("node attached", "node_id", n.id, "parent_id", parent.id)
	return nil
}

// AddChild makes child the last child of n.
func (n *Node) AddChild(child *Node) error {
	return child.SetParent(n)
}

// RemoveChild detaches child from n. It is a no-op if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	i := slices.Index(n.children, child)
	if i < 0 {
		return
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// FindByID searches the subtree rooted at n, n included, depth first.
func (n *Node) FindByID(id string) (*Node, bool) {
	if n.id == id {
		return n, true
	}
	for _, c := range n.children {
		if found, ok := c.FindByID(id); ok {
			return found, true
		}
	}
	return nil, false
}

// Descendants returns every node below n in pre-order. n itself is excluded.
func (n *Node) Descendants() []*Node {
	var out []*Node
	for _, c := range n.children {
		out = append(out, c)
		out = append(out, c.Descendants()...)
	}
	return out
}

// ToConfig serialises the id, style and children of the subtree.
// Overrides, metadata, animations and visibility are not included.
func (n *Node) ToConfig() domain.Config {
	cfg := domain.Config{ID: n.id, Style: n.style.Clone()}
	for _, c := range n.children {
		cfg.Children = append(cfg.Children, c.ToConfig())
	}
	return cfg
}

// FromConfig builds a tree from cfg, top-down. Every node receives opts.
func FromConfig(cfg domain.Config, opts ...Option) *Node {
	n := New(cfg.ID, cfg.Style, opts...)
	for _, childCfg := range cfg.Children {
		child := FromConfig(childCfg, opts...)
		// A freshly built child can never be an ancestor of n.
		_ = n.AddChild(child)
	}
	return n
}

// Clone returns a structural copy of the subtree (ids, styles and children)
// sharing n's engines and hooks.
func (n *Node) Clone() *Node {
	return FromConfig(n.ToConfig(), n.shared()...)
}
