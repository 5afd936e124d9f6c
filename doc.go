/*
Package lattice is a style-inheritance and theming engine for component trees.

Named style nodes form a tree. Each node's effective ("computed") style merges
its ancestors' styles, its own style and its instance-level overrides, then
resolves theme tokens and finally applies responsive breakpoint rules.

# Concept

A parent style is defined once and propagates to every descendant, while each
node may diverge through overrides without affecting its siblings. The engines
that resolve tokens and breakpoints are injected, so a whole tree can switch
theme or viewport in one call. Rendering is left to the host: it reads computed
styles and subscribes to change notifications.

# Key Features

  - Deterministic Resolution: inheritance, overrides, theme tokens, then breakpoints, always in that order.
  - Hexagonal Architecture: the viewport is a port (ports.BoundaryMatcher); file formats are adapters.
  - Mobile-first Cascade: a breakpoint overlay stays in effect at larger breakpoints.
  - Cheap Change Detection: computed styles hash to a stable fingerprint for memoisation.

# Usage

	ws := lattice.New(
		lattice.WithMatcher(responsive.Viewport{Width: 1024}),
	)

	card := ws.CreateElement("card", domain.Style{
		"color":   "$colors.primary",
		"padding": "1rem",
	})
	title, _ := ws.CreateChild("card", "title", domain.Style{"fontSize": "1.5rem"})

	card.OnStyleChange(func(n *node.Node) {
		// re-render n and its descendants
	})

	title.OverrideStyle(domain.Style{"color": "$colors.secondary"})
	style, _ := ws.ComputedStyle("title")
*/
package lattice
