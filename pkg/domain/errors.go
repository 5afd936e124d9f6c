package domain

import "errors"

// ErrInvalidTheme is returned when selecting a theme that has not been registered.
var ErrInvalidTheme = errors.New("invalid theme")

// ErrCyclicParent is returned when a node would become its own ancestor.
var ErrCyclicParent = errors.New("cyclic parent")

// ErrNodeNotFound is returned when a node ID cannot be found in a registry.
var ErrNodeNotFound = errors.New("node not found")

// ErrNodeExists is returned when creating a node under an ID that is already registered.
var ErrNodeExists = errors.New("node already exists")

// ErrUnsupportedFormat is returned by file adapters for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported format")
