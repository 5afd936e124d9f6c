package node

import (
	"slices"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/style"
)

// Listener is called with the mutated node after a notifying style change.
type Listener func(n *Node)

type listener struct {
	id uint64
	fn Listener
}

// OnStyleChange registers fn and returns a function that unregisters it.
// Listeners run synchronously in registration order and may mutate the node.
func (n *Node) OnStyleChange(fn Listener) func() {
	n.nextListenerID++
	id := n.nextListenerID
	n.listeners = append(n.listeners, listener{id: id, fn: fn})
	return func() {
		n.listeners = slices.DeleteFunc(n.listeners, func(l listener) bool { return l.id == id })
	}
}

func (n *Node) notify() {
	for _, l := range slices.Clone(n.listeners) {
		l.fn(n)
	}
}

// OnComputedChange registers fn to receive the computed-style delta (see style.Diff)
// after each notifying mutation that changed the computed style of n.
// The returned function unregisters it.
func (n *Node) OnComputedChange(fn func(n *Node, delta domain.Style)) func() {
	last := n.ComputedStyle()
	return n.OnStyleChange(func(n *Node) {
		current := n.ComputedStyle()
		delta := style.Diff(last, current)
		last = current
		if delta != nil {
			fn(n, delta)
		}
	})
}
