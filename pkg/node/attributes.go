package node

import (
	"maps"
	"slices"
	"sort"

	"github.com/aretw0/lattice/pkg/domain"
)

// Metadata returns a copy of the node metadata.
func (n *Node) Metadata() map[string]any {
	return maps.Clone(n.metadata)
}

// UpdateMetadata merges values into the metadata and stamps domain.MetadataUpdatedAt.
func (n *Node) UpdateMetadata(values map[string]any) {
	maps.Copy(n.metadata, values)
	n.metadata[domain.MetadataUpdatedAt] = n.now()
}

func (n *Node) IsVisible() bool { return n.visible }

func (n *Node) IsEnabled() bool { return n.enabled }

func (n *Node) SetVisible(visible bool) { n.visible = visible }

func (n *Node) SetEnabled(enabled bool) { n.enabled = enabled }

// AddAnimation stores an animation descriptor under name, replacing any previous one.
func (n *Node) AddAnimation(name string, a domain.Animation) {
	n.animations[name] = a
}

func (n *Node) RemoveAnimation(name string) {
	delete(n.animations, name)
}

func (n *Node) Animation(name string) (domain.Animation, bool) {
	a, ok := n.animations[name]
	return a, ok
}

// Animations returns every animation descriptor ordered by name.
func (n *Node) Animations() []domain.Animation {
	names := slices.Collect(maps.Keys(n.animations))
	sort.Strings(names)
	out := make([]domain.Animation, 0, len(names))
	for _, name := range names {
		out = append(out, n.animations[name])
	}
	return out
}

// ValidateStyle validates the node's own style.
func (n *Node) ValidateStyle() domain.ValidationResult {
	return n.validator.Validate(n.style)
}

// ValidateOverrides validates the node's overrides.
func (n *Node) ValidateOverrides() domain.ValidationResult {
	return n.validator.Validate(n.overrides)
}

// ApplyTheme switches the node's theme engine to name.
// With a shared engine this switches the theme of every node using it.
func (n *Node) ApplyTheme(name string) error {
	return n.theme.SetCurrentTheme(name)
}

// CurrentTheme returns the name of the active theme.
func (n *Node) CurrentTheme() string {
	return n.theme.CurrentTheme().Name
}

// CurrentBreakpoint returns the active breakpoint of the node's responsive engine.
func (n *Node) CurrentBreakpoint() string {
	return n.responsive.CurrentBreakpoint()
}
