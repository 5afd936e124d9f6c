package node

import (
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/style"
)

// notifies records which mutation kinds invoke change listeners.
// Hooks observe every kind.
var notifies = map[domain.MutationKind]bool{
	domain.MutationUpdateStyle:       true,
	domain.MutationOverrideStyle:     true,
	domain.MutationInheritFromParent: true,
	domain.MutationMergeStyle:        false,
	domain.MutationResetOverrides:    false,
	domain.MutationResetToParent:     false,
	domain.MutationResetToDefault:    false,
}

// mutate applies a style change, fires the StyleChange hook and, when the kind
// notifies, calls the change listeners in registration order.
func (n *Node) mutate(kind domain.MutationKind, apply func()) {
	apply()

	notify := notifies[kind]
	n.logger.Debug("style mutated", "node_id", n.id, "kind", kind, "notify", notify)
	n.hooks.StyleChanged(&domain.StyleEvent{
		EventBase: domain.EventBase{Timestamp: n.now()},
		NodeID:    n.id,
		Kind:      kind,
		Notified:  notify,
	})
	if notify {
		n.notify()
	}
}

// ComputedStyle resolves the effective style: the parent's computed style,
// then the node's own style, then its overrides, with theme tokens resolved
// and the responsive envelope applied last. It is recomputed on every call.
func (n *Node) ComputedStyle() domain.Style {
	var inherited domain.Style
	if n.parent != nil {
		inherited = n.parent.ComputedStyle()
	}
	merged := style.Merge(inherited, n.style, n.overrides)
	return n.responsive.ResponsiveStyles(n.theme.ApplyThemeVariables(merged))
}

// StyleProperty returns one property of the computed style.
func (n *Node) StyleProperty(name string) (any, bool) {
	v, ok := n.ComputedStyle()[name]
	return v, ok
}

// SetStyleProperty overrides a single property.
func (n *Node) SetStyleProperty(name string, value any) {
	n.OverrideStyle(domain.Style{name: value})
}

// UpdateStyle shallow-merges a copy of partial into the node's own style and notifies.
func (n *Node) UpdateStyle(partial domain.Style) {
	n.mutate(domain.MutationUpdateStyle, func() {
		n.style = style.Merge(n.style, partial.Clone())
	})
}

// OverrideStyle shallow-merges partial into the overrides and notifies.
func (n *Node) OverrideStyle(partial domain.Style) {
	n.mutate(domain.MutationOverrideStyle, func() {
		n.overrides = style.Merge(n.overrides, partial.Clone())
	})
}

// MergeStyle merges partial into the node's own style without notifying.
// With deep set, nested mappings are merged recursively.
func (n *Node) MergeStyle(partial domain.Style, deep bool) {
	n.mutate(domain.MutationMergeStyle, func() {
		if deep {
			n.style = style.DeepMerge(n.style, partial.Clone())
			return
		}
		n.style = style.Merge(n.style, partial.Clone())
	})
}

// InheritFromParent copies the named properties present in the parent's
// computed style into the overrides. Roots are left untouched.
func (n *Node) InheritFromParent(names ...string) {
	if n.parent == nil {
		return
	}
	computed := n.parent.ComputedStyle()
	inherited := domain.Style{}
	for _, name := range names {
		if v, ok := computed[name]; ok {
			inherited[name] = v
		}
	}
	n.mutate(domain.MutationInheritFromParent, func() {
		n.overrides = style.Merge(n.overrides, inherited)
	})
}

// ResetOverrides clears the overrides.
func (n *Node) ResetOverrides() {
	n.mutate(domain.MutationResetOverrides, func() {
		n.overrides = domain.Style{}
	})
}

// ResetToParent clears the overrides so every property follows the parent again.
func (n *Node) ResetToParent() {
	n.mutate(domain.MutationResetToParent, func() {
		n.overrides = domain.Style{}
	})
}

// ResetToDefault clears both the own style and the overrides.
func (n *Node) ResetToDefault() {
	n.mutate(domain.MutationResetToDefault, func() {
		n.style = domain.Style{}
		n.overrides = domain.Style{}
	})
}

// CreateResponsiveStyles replaces the responsive envelope of the own style
// with overlays, through UpdateStyle.
func (n *Node) CreateResponsiveStyles(overlays map[string]domain.Style) {
	n.UpdateStyle(n.responsive.CreateResponsiveStyles(n.style, overlays))
}

// StyleHash returns a cheap, non-cryptographic fingerprint of the computed style.
// Equal computed styles always hash equal.
func (n *Node) StyleHash() (string, error) {
	return style.Hash(n.ComputedStyle())
}
