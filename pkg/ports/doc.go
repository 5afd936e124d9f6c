/*
Package ports defines the driven ports (interfaces) of the lattice engine.

These interfaces decouple the core logic from the host environment, so the engine
never observes a real screen or window.

# Key Interfaces

  - BoundaryMatcher: reports whether a breakpoint boundary (e.g. "768px") is currently active.
*/
package ports
