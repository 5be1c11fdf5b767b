// Package simplify rewrites topology trees into canonical form by inlining
// nested compositions of the same kind:
//
//	Series(Series(R,R),R)          → Series(R,R,R)
//	Parallel(Parallel(R,C),L,R)    → Parallel(R,C,L,R)
//
// Canonical form: no composition has a direct child of its own kind.
//
// Guarantees:
//
//   - Electrical equivalence: the impedance at every regime and the
//     per-component distribution are unchanged.
//   - Idempotence: Simplify(Simplify(t)) is structurally equal to Simplify(t).
//   - Leaves are neither created nor destroyed; their relative order is kept.
//
// Simplify is a pure bottom-up rebuild. It allocates a fresh composition
// spine and leaves the input intact; the (immutable) component leaves are
// shared between input and result, so Clone the result before combining it
// with the input into one tree.
//
// Complexity: O(N) time and space.
package simplify

import (
	"errors"

	"github.com/katalvlaran/rlcnet/network"
)

// Simplify returns the canonical form of n. Components are returned as is.
// A nil input yields nil.
func Simplify(n *network.Network) *network.Network {
	if n == nil || n.IsComponent() {
		return n
	}

	children := make([]*network.Network, 0, n.Len())
	for _, c := range n.Children() {
		// children first: a simplified child of our kind already has no
		// grandchild of our kind, so one level of inlining is enough
		sc := Simplify(c)
		if sc != nil && !sc.IsComponent() && sc.Kind() == n.Kind() {
			children = append(children, sc.Children()...)
			continue
		}
		children = append(children, sc)
	}

	return network.NewComposition(n.Kind(), children...)
}

// Canonical reports whether n is well formed and no composition in it has a
// direct child of the same kind.
// Complexity: O(N).
func Canonical(n *network.Network) bool {
	if n == nil {
		return true
	}
	err := network.Walk(n, network.WithOnVisit(func(node *network.Network, _ int) error {
		if node.IsComponent() {
			return nil
		}
		for _, c := range node.Children() {
			if c != nil && c.Kind() == node.Kind() {
				return errStop
			}
		}
		return nil
	}))

	// a malformed tree (nil child) is not canonical either
	return err == nil
}

// errStop aborts a walk early once the answer is known.
var errStop = errors.New("simplify: stop")
