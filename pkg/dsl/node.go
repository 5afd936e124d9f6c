package dsl

import "github.com/aretw0/lattice/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	id      string
	parent  string
	style   domain.Style
	builder *Builder
}

// Style merges properties into the node style.
func (n *NodeBuilder) Style(s domain.Style) *NodeBuilder {
	for k, v := range s {
		n.style[k] = v
	}
	return n
}

// Set sets a single style property.
func (n *NodeBuilder) Set(property string, value any) *NodeBuilder {
	n.style[property] = value
	return n
}

// Token sets a property to a theme token, e.g. Token("color", "colors.primary").
func (n *NodeBuilder) Token(property, path string) *NodeBuilder {
	n.style[property] = domain.TokenPrefix + path
	return n
}

// Responsive adds an overlay applied from breakpoint upwards.
func (n *NodeBuilder) Responsive(breakpoint string, overlay domain.Style) *NodeBuilder {
	envelope, ok := n.style[domain.EnvelopeKey].(map[string]any)
	if !ok {
		envelope = make(map[string]any)
		n.style[domain.EnvelopeKey] = envelope
	}
	envelope[breakpoint] = overlay.Clone()
	return n
}

// Under places the node below parent. The parent may be added later.
func (n *NodeBuilder) Under(parent string) *NodeBuilder {
	n.parent = parent
	return n
}

// Child adds (or fetches) a node placed below this one and returns its builder.
func (n *NodeBuilder) Child(id string) *NodeBuilder {
	return n.builder.Add(id).Under(n.id)
}

// ID returns the node identifier.
func (n *NodeBuilder) ID() string {
	return n.id
}

// Build returns the node's own configuration, without children.
func (n *NodeBuilder) Build() domain.Config {
	return domain.Config{ID: n.id, Style: n.style.Clone()}
}
