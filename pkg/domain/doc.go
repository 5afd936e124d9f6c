/*
Package domain contains the core data model of the lattice style engine.

It defines the entities shared by every other package: style mappings, node
configurations, themes, animations, validation results and lifecycle hooks.
This package is kept pure and free of I/O, following Hexagonal Architecture
principles.

# Key Entities

  - Style: a property name to value mapping (string, number or nested mapping).
  - Config / Snapshot: the serialisable shape of a node tree and of a registry forest.
  - Theme: a named record of colors, typography, spacing, breakpoints, radii and shadows.
  - ValidationResult: the outcome of validating a style mapping.
  - Hooks: observability callbacks fired by nodes, registries and theme engines.
*/
package domain
