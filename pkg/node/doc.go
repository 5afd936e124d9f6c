// Package node implements the style node: a tree element whose computed style
// merges its ancestors' styles, its own style and its overrides, then resolves
// theme tokens and applies the responsive envelope for the active breakpoint.
//
// Every style mutation passes through a single choke point which fires the
// lifecycle hooks and, for the notifying kinds, the node's change listeners.
package node
