package domain

import (
	"time"
)

// MutationKind identifies which node operation changed style state.
type MutationKind string

const (
	MutationUpdateStyle       MutationKind = "update_style"
	MutationOverrideStyle     MutationKind = "override_style"
	MutationInheritFromParent MutationKind = "inherit_from_parent"
	MutationMergeStyle        MutationKind = "merge_style"
	MutationResetOverrides    MutationKind = "reset_overrides"
	MutationResetToParent     MutationKind = "reset_to_parent"
	MutationResetToDefault    MutationKind = "reset_to_default"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
}

// StyleEvent is emitted after every style mutation on a node.
// Notified reports whether change listeners were invoked for it.
type StyleEvent struct {
	EventBase
	NodeID   string       `json:"node_id"`
	Kind     MutationKind `json:"kind"`
	Notified bool         `json:"notified"`
}

// NodeEvent is emitted when a node enters or leaves a registry.
type NodeEvent struct {
	EventBase
	NodeID string `json:"node_id"`
	Root   bool   `json:"root"`
}

// ThemeEvent is emitted when the active theme changes.
type ThemeEvent struct {
	EventBase
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// Hooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type Hooks struct {
	OnStyleChange func(*StyleEvent)
	OnRegister    func(*NodeEvent)
	OnUnregister  func(*NodeEvent)
	OnThemeChange func(*ThemeEvent)
}

// ChainHooks combines several hook sets; callbacks run in argument order.
func ChainHooks(hooks ...Hooks) Hooks {
	var out Hooks
	for _, h := range hooks {
		out.OnStyleChange = chain(out.OnStyleChange, h.OnStyleChange)
		out.OnRegister = chain(out.OnRegister, h.OnRegister)
		out.OnUnregister = chain(out.OnUnregister, h.OnUnregister)
		out.OnThemeChange = chain(out.OnThemeChange, h.OnThemeChange)
	}
	return out
}

func chain[E any](first, second func(*E)) func(*E) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(e *E) {
		first(e)
		second(e)
	}
}

// StyleChanged fires OnStyleChange if set.
func (h Hooks) StyleChanged(e *StyleEvent) {
	if h.OnStyleChange != nil {
		h.OnStyleChange(e)
	}
}

// Registered fires OnRegister if set.
func (h Hooks) Registered(e *NodeEvent) {
	if h.OnRegister != nil {
		h.OnRegister(e)
	}
}

// Unregistered fires OnUnregister if set.
func (h Hooks) Unregistered(e *NodeEvent) {
	if h.OnUnregister != nil {
		h.OnUnregister(e)
	}
}

// ThemeChanged fires OnThemeChange if set.
func (h Hooks) ThemeChanged(e *ThemeEvent) {
	if h.OnThemeChange != nil {
		h.OnThemeChange(e)
	}
}
