/*
Package observability provides tools for monitoring the lattice engines.

It includes Prometheus metrics and structured-logging hooks, both exposed as
domain.Hooks so they can be combined with domain.ChainHooks and injected into
nodes, registries and theme engines.
*/
package observability
