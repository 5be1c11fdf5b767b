// SPDX-License-Identifier: MIT
// Package: rlcnet/network
//
// types.go - Kind, Regime, Network and their constructors.
//
// Design:
//   - One struct for both variants; the kind tag decides which fields matter.
//   - Components are immutable once created; no setters are exported.
//   - Compositions own their children exclusively.

package network

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by Validate and Walk.
var (
	// ErrNilNetwork indicates a nil root or a nil child.
	ErrNilNetwork = errors.New("network: nil network")

	// ErrInvalidKind indicates a node whose kind tag is not one of the five kinds.
	ErrInvalidKind = errors.New("network: invalid kind")

	// ErrEmptyComposition indicates a Series or Parallel node without children.
	ErrEmptyComposition = errors.New("network: empty composition")

	// ErrEmptyID indicates a component without an identifier.
	ErrEmptyID = errors.New("network: empty component id")

	// ErrDuplicateID indicates two components sharing one identifier.
	ErrDuplicateID = errors.New("network: duplicate component id")

	// ErrSharedNode indicates a node reachable twice (shared subtree or cycle).
	ErrSharedNode = errors.New("network: node reachable more than once")
)

// Kind tags a node as one of the three components or one of the two compositions.
type Kind uint8

const (
	// Invalid is the zero Kind; a node carrying it is malformed.
	Invalid Kind = iota
	// Resistor is a time-invariant component.
	Resistor
	// Capacitor shorts at T0 and opens once settled.
	Capacitor
	// Inductor opens at T0 and shorts once settled.
	Inductor
	// Series adds the impedances of its children.
	Series
	// Parallel combines its children by the reciprocal-sum rule.
	Parallel
)

// String returns the long name of the kind.
func (k Kind) String() string {
	switch k {
	case Resistor:
		return "Resistor"
	case Capacitor:
		return "Capacitor"
	case Inductor:
		return "Inductor"
	case Series:
		return "Series"
	case Parallel:
		return "Parallel"
	default:
		return "Invalid"
	}
}

// Symbol returns the one-letter schematic symbol of a component kind
// ("R", "C", "L") and the long name for compositions.
func (k Kind) Symbol() string {
	switch k {
	case Resistor:
		return "R"
	case Capacitor:
		return "C"
	case Inductor:
		return "L"
	default:
		return k.String()
	}
}

// IsComponent reports whether k is a leaf kind.
func (k Kind) IsComponent() bool {
	return k == Resistor || k == Capacitor || k == Inductor
}

// IsComposition reports whether k is Series or Parallel.
func (k Kind) IsComposition() bool {
	return k == Series || k == Parallel
}

// Regime selects the instant at which a network is evaluated.
type Regime uint8

const (
	// T0 is the instant right after the voltage is applied.
	T0 Regime = iota
	// Settled is the steady state reached after every transient has decayed.
	Settled
)

// String returns the short label used in file names ("t0", "tInf").
func (r Regime) String() string {
	if r == T0 {
		return "t0"
	}

	return "tInf"
}

// ParseRegime converts "t0" or "tInf" into a Regime.
func ParseRegime(s string) (Regime, error) {
	switch s {
	case "t0":
		return T0, nil
	case "tInf":
		return Settled, nil
	default:
		return T0, fmt.Errorf("network: unknown regime %q (want t0 or tInf)", s)
	}
}

// Network is one node of a topology tree: a Component leaf or a Composition.
//
// Only the fields relevant to the kind are populated:
//   - components use id and value;
//   - compositions use children.
type Network struct {
	kind     Kind
	id       string
	value    float64
	children []*Network
}

// NewComponent creates a leaf of the given component kind.
// Panics if kind is not Resistor, Capacitor or Inductor.
// Complexity: O(1).
func NewComponent(kind Kind, id string, value float64) *Network {
	if !kind.IsComponent() {
		panic(fmt.Sprintf("network: NewComponent(%s): not a component kind", kind))
	}

	return &Network{kind: kind, id: id, value: value}
}

// NewResistor creates a resistor of value Ω.
func NewResistor(id string, value float64) *Network { return NewComponent(Resistor, id, value) }

// NewCapacitor creates a capacitor of value F.
func NewCapacitor(id string, value float64) *Network { return NewComponent(Capacitor, id, value) }

// NewInductor creates an inductor of value H.
func NewInductor(id string, value float64) *Network { return NewComponent(Inductor, id, value) }

// NewComposition creates a Series or Parallel node that takes ownership of
// children. Panics if kind is not a composition kind.
//
// An empty composition can be built but is malformed: Validate reports it and
// evaluation panics on it.
// Complexity: O(len(children)).
func NewComposition(kind Kind, children ...*Network) *Network {
	if !kind.IsComposition() {
		panic(fmt.Sprintf("network: NewComposition(%s): not a composition kind", kind))
	}
	owned := make([]*Network, len(children))
	copy(owned, children)

	return &Network{kind: kind, children: owned}
}

// NewSeries is shorthand for NewComposition(Series, children...).
func NewSeries(children ...*Network) *Network { return NewComposition(Series, children...) }

// NewParallel is shorthand for NewComposition(Parallel, children...).
func NewParallel(children ...*Network) *Network { return NewComposition(Parallel, children...) }

// Kind returns the node's tag.
func (n *Network) Kind() Kind { return n.kind }

// ID returns the component identifier; empty for compositions.
func (n *Network) ID() string { return n.id }

// Value returns the nominal component value; 0 for compositions.
func (n *Network) Value() float64 { return n.value }

// IsComponent reports whether n is a leaf.
func (n *Network) IsComponent() bool { return n.kind.IsComponent() }

// Len returns the number of direct children (0 for components).
func (n *Network) Len() int { return len(n.children) }

// Children returns a copy of the direct children slice.
// The child nodes themselves are shared, not copied.
func (n *Network) Children() []*Network {
	out := make([]*Network, len(n.children))
	copy(out, n.children)

	return out
}

// Child returns the i-th direct child. Panics when i is out of range.
func (n *Network) Child(i int) *Network { return n.children[i] }

// invariant panics with a uniform prefix; used for programming errors only.
func invariant(format string, args ...interface{}) {
	panic("network: invariant violated: " + fmt.Sprintf(format, args...))
}
