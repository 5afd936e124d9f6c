package domain

// Config is the serialised form of a node and its subtree.
// Overrides, metadata, animations and visibility state are intentionally not part of it.
type Config struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Style    Style    `json:"style" yaml:"style" toml:"style"`
	Children []Config `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Snapshot is the exported form of a registry: its root forest.
type Snapshot struct {
	RootElements []Config `json:"rootElements" yaml:"rootElements" toml:"rootElements"`
}
