// Package network models RLC circuit topologies as a recursive tree and
// evaluates them at the two regimes an exercise asks about.
//
// What:
//
//   - Network: a tagged union. A node is either a Component (Resistor,
//     Capacitor, Inductor) carrying an ID and a nominal value, or a
//     Composition (Series, Parallel) owning an ordered list of children.
//   - Regime: T0 (immediately after the source is switched on) and Settled
//     (t → ∞, every transient has died out).
//   - Impedance(regime): aggregate impedance of any node.
//   - Distribute(regime, voltage): per-component {impedance, voltage, current}
//     for a voltage supplied across the node.
//
// Component table (the single source of truth for all algebra):
//
//	           T0      Settled
//	Resistor   R       R
//	Capacitor  0       +Inf
//	Inductor   +Inf    0
//
// Composition rules:
//
//   - Series: plain sum; +Inf propagates.
//   - Parallel: any 0 child shorts the group (0); +Inf children are dropped;
//     no children left means +Inf; otherwise fold (a*b)/(a+b).
//
// Degenerate distribution rules:
//
//   - Series with two or more open (+Inf) children: each open child gets 0 V.
//   - Series whose total is +Inf with exactly one open child: that child gets
//     the whole supplied voltage.
//   - Parallel whose own impedance is 0: every child gets 0 V.
//   - A 0 Ω component reports 0 V and +Inf A; an open component reports the
//     supplied voltage and 0 A.
//
// Invariants:
//
//   - The tree has no cycles and no shared nodes.
//   - Compositions are never empty during evaluation.
//   - Component IDs are unique across the tree.
//
// Validate reports violations as errors. Impedance and Distribute treat them
// as programming errors and panic.
//
// Result order:
//
//	Table keeps readings in tree order (depth-first, left to right).
//	Table.Sorted orders them by kind (R, C, L), then by the numeric ID suffix.
//
// Complexity:
//
//   - Impedance: O(N) for a tree with N nodes.
//   - Distribute: O(N·D) where D is the tree depth (impedances are recomputed
//     per level; trees are small).
package network
