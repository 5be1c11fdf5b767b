// SPDX-License-Identifier: MIT
// Package: rlcnet/network
//
// distribute.go - voltage/current distribution over the tree.
//
// Contract:
//   - The supplied voltage is the potential difference across the node.
//   - Every component below the node gets exactly one Reading.
//   - Indeterminate forms (∞/∞, 0/0) are settled by the documented overrides,
//     never by plain IEEE arithmetic; 0/0 on a shorted series only reaches
//     nodes whose own impedance is 0, which report 0 V.

package network

import "math"

// Distribute supplies voltage across n at regime r and returns the reading of
// every component below n, in tree order.
//
// Panics on a malformed tree (empty composition, duplicate component ID).
func (n *Network) Distribute(r Regime, voltage float64) *Table {
	t := newTable()
	n.distribute(r, voltage, t)

	return t
}

func (n *Network) distribute(r Regime, voltage float64, t *Table) {
	switch n.kind {
	case Resistor, Capacitor, Inductor:
		t.add(n.reading(r, voltage))
	case Series:
		distributeSeries(n, r, voltage, t)
	case Parallel:
		distributeParallel(n, r, voltage, t)
	default:
		invariant("Distribute on kind %s", n.kind)
	}
}

// reading applies Ohm's law to a component, with the 0 and +Inf cases spelled out.
func (n *Network) reading(r Regime, voltage float64) Reading {
	z := n.Impedance(r)
	rd := Reading{ID: n.id, Kind: n.kind, Impedance: z}
	switch {
	case z == 0:
		rd.Voltage, rd.Current = 0, math.Inf(1)
	case math.IsInf(z, 1):
		rd.Voltage, rd.Current = voltage, 0
	default:
		rd.Voltage, rd.Current = voltage, voltage/z
	}

	return rd
}

func distributeSeries(n *Network, r Regime, voltage float64, t *Table) {
	total := seriesImpedance(n, r)

	zs := make([]float64, len(n.children))
	open := 0
	for i, c := range n.children {
		zs[i] = c.Impedance(r)
		if math.IsInf(zs[i], 1) {
			open++
		}
	}

	for i, c := range n.children {
		part := voltage * zs[i] / total
		if math.IsInf(zs[i], 1) {
			switch {
			case open > 1:
				// several opens in series: the split is indeterminate, defined as 0
				part = 0
			case math.IsInf(total, 1):
				// the only open element blocks the current and takes everything
				part = voltage
			}
		}
		c.distribute(r, part, t)
	}
}

func distributeParallel(n *Network, r Regime, voltage float64, t *Table) {
	if parallelImpedance(n, r) == 0 {
		voltage = 0 // shorted group
	}
	for _, c := range n.children {
		c.distribute(r, voltage, t)
	}
}
