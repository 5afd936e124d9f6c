// Package style provides the merge, hashing and value helpers shared by the
// lattice engines. All functions are pure and never mutate their inputs.
package style
