// SPDX-License-Identifier: MIT
// Package: rlcnet/network
//
// methods.go - structural helpers: Clone, Equal, Components, Depth.

package network

// Clone returns a deep copy of n. The copy shares no node with n, so it can
// be handed to another goroutine or mutated by a rebuild independently.
// Complexity: O(N).
func (n *Network) Clone() *Network {
	if n == nil {
		return nil
	}
	cp := &Network{kind: n.kind, id: n.id, value: n.value}
	if len(n.children) > 0 {
		cp.children = make([]*Network, len(n.children))
		for i, c := range n.children {
			cp.children[i] = c.Clone()
		}
	}

	return cp
}

// Equal reports whether a and b have the same structure: same kinds, same
// component IDs and values, same child order.
// Complexity: O(min(Na, Nb)).
func Equal(a, b *Network) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind || a.id != b.id || a.value != b.value || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}

	return true
}

// Components returns the leaves below n in depth-first, left-to-right order.
// Nil children are skipped; use Validate to reject them.
// Complexity: O(N).
func (n *Network) Components() []*Network {
	return n.appendComponents(nil)
}

func (n *Network) appendComponents(out []*Network) []*Network {
	if n == nil {
		return out
	}
	if n.kind.IsComponent() {
		return append(out, n)
	}
	for _, c := range n.children {
		out = c.appendComponents(out)
	}

	return out
}

// Count returns how many components of kind k are below n.
func (n *Network) Count(k Kind) int {
	c := 0
	for _, leaf := range n.Components() {
		if leaf.kind == k {
			c++
		}
	}

	return c
}

// Depth returns the height of the tree: 0 for a component, 1 for a
// composition of components, and so on.
// Complexity: O(N).
func (n *Network) Depth() int {
	d := 0
	for _, c := range n.children {
		if cd := c.Depth() + 1; cd > d {
			d = cd
		}
	}

	return d
}
