// SPDX-License-Identifier: MIT
// Package: rlcnet/network
//
// impedance.go - aggregate impedance at a regime.

package network

import "math"

// Impedance returns the impedance of n at regime r, in Ω ∪ {0, +Inf}.
//
// Panics on a malformed node (invalid kind or empty composition).
// Complexity: O(N) over the subtree.
func (n *Network) Impedance(r Regime) float64 {
	switch n.kind {
	case Resistor:
		return n.value
	case Capacitor:
		if r == T0 {
			return 0 // uncharged: acts as a short
		}
		return math.Inf(1) // charged: acts as an open
	case Inductor:
		if r == T0 {
			return math.Inf(1) // opposes the sudden change of current
		}
		return 0
	case Series:
		return seriesImpedance(n, r)
	case Parallel:
		return parallelImpedance(n, r)
	}
	invariant("Impedance on kind %s", n.kind)

	return math.NaN()
}

func seriesImpedance(n *Network, r Regime) float64 {
	if len(n.children) == 0 {
		invariant("empty Series")
	}
	var sum float64
	for _, c := range n.children {
		sum += c.Impedance(r)
	}

	return sum
}

func parallelImpedance(n *Network, r Regime) float64 {
	if len(n.children) == 0 {
		invariant("empty Parallel")
	}

	finite := make([]float64, 0, len(n.children))
	for _, c := range n.children {
		z := c.Impedance(r)
		if z == 0 {
			return 0 // one shorted branch shorts the whole group
		}
		if math.IsInf(z, 1) {
			continue // open branches carry nothing
		}
		finite = append(finite, z)
	}
	if len(finite) == 0 {
		return math.Inf(1)
	}

	res := finite[0]
	for _, z := range finite[1:] {
		res = (res * z) / (res + z)
	}

	return res
}
