// SPDX-License-Identifier: MIT
// Package: rlcnet/quality
//
// quality.go - acceptance metrics and limits.

package quality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rlcnet/network"
)

// ReferenceVoltage is the supply applied when looking for useless resistors.
// Any nonzero value gives the same answer.
const ReferenceVoltage = 5.0

var (
	// ErrTooManyComponents indicates a composition with more direct leaves
	// than Limits.MaxComponentsPerCircuit.
	ErrTooManyComponents = errors.New("quality: too many components per circuit")

	// ErrTooManyUselessResistors indicates more zero-voltage resistors than
	// Limits.MaxUselessResistors.
	ErrTooManyUselessResistors = errors.New("quality: too many useless resistors")
)

// Limits bounds the acceptance metrics. Both bounds are inclusive.
type Limits struct {
	MaxComponentsPerCircuit int `yaml:"maxComponentsPerCircuit"`
	MaxUselessResistors     int `yaml:"maxUselessResistors"`
}

// Metrics are the measured values of one network.
type Metrics struct {
	MaxComponentsPerCircuit int
	UselessResistors        int
}

// String renders the metrics for logs.
func (m Metrics) String() string {
	return fmt.Sprintf("maxComponents=%d useless=%d", m.MaxComponentsPerCircuit, m.UselessResistors)
}

// MaxComponentsPerCircuit returns the largest count of direct leaf children
// over all composition nodes of n. A lone leaf reports 1, nil reports 0.
// Complexity: O(N).
func MaxComponentsPerCircuit(n *network.Network) int {
	if n == nil {
		return 0
	}
	if n.IsComponent() {
		return 1
	}

	best := 0
	// Walk only fails on a nil child; the subtree after it is left uncounted
	// and Validate reports the defect
	_ = network.Walk(n, network.WithOnVisit(func(node *network.Network, _ int) error {
		if node.IsComponent() {
			return nil
		}
		leaves := 0
		for _, c := range node.Children() {
			if c != nil && c.IsComponent() {
				leaves++
			}
		}
		if leaves > best {
			best = leaves
		}
		return nil
	}))

	return best
}

// UselessResistors counts the resistors of n whose voltage is exactly 0 when
// ReferenceVoltage is distributed at network.Settled.
// Complexity: O(N).
func UselessResistors(n *network.Network) int {
	if n == nil {
		return 0
	}

	count := 0
	for _, r := range n.Distribute(network.Settled, ReferenceVoltage).Readings() {
		if r.Kind == network.Resistor && r.Voltage == 0 {
			count++
		}
	}

	return count
}

// Measure returns both metrics of n.
func Measure(n *network.Network) Metrics {
	return Metrics{
		MaxComponentsPerCircuit: MaxComponentsPerCircuit(n),
		UselessResistors:        UselessResistors(n),
	}
}

// Check returns nil when n satisfies lim. The component bound is checked
// first; the returned error wraps the sentinel of the first violated bound.
func Check(n *network.Network, lim Limits) error {
	_, err := CheckMetrics(Measure(n), lim)
	return err
}

// CheckMetrics compares already measured metrics against lim and returns them
// back for convenient chaining.
func CheckMetrics(m Metrics, lim Limits) (Metrics, error) {
	if m.MaxComponentsPerCircuit > lim.MaxComponentsPerCircuit {
		return m, fmt.Errorf("Check: %d > %d: %w",
			m.MaxComponentsPerCircuit, lim.MaxComponentsPerCircuit, ErrTooManyComponents)
	}
	if m.UselessResistors > lim.MaxUselessResistors {
		return m, fmt.Errorf("Check: %d > %d: %w",
			m.UselessResistors, lim.MaxUselessResistors, ErrTooManyUselessResistors)
	}

	return m, nil
}

// Accept reports whether n satisfies lim.
func Accept(n *network.Network, lim Limits) bool {
	return Check(n, lim) == nil
}
