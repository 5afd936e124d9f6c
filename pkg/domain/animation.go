package domain

import "time"

// IterationInfinite marks an animation that repeats forever.
const IterationInfinite = -1

// Animation describes a named animation attached to a node.
// Playback is owned by the rendering layer; the engine only stores descriptors.
type Animation struct {
	Name           string        `json:"name" yaml:"name"`
	Duration       time.Duration `json:"duration" yaml:"duration"`
	TimingFunction string        `json:"timingFunction" yaml:"timingFunction"`
	Delay          time.Duration `json:"delay,omitempty" yaml:"delay,omitempty"`
	IterationCount int           `json:"iterationCount,omitempty" yaml:"iterationCount,omitempty"` // IterationInfinite for infinite
	Direction      string        `json:"direction,omitempty" yaml:"direction,omitempty"`           // normal, reverse, alternate, alternate-reverse
	FillMode       string        `json:"fillMode,omitempty" yaml:"fillMode,omitempty"`             // none, forwards, backwards, both
}
