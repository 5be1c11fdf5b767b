// Package builder provides internal helper functions and types
// for configuring nominal value distributions in topology constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces a nominal component value given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type ValueFn func(rng *rand.Rand) float64

// ConstantValueFn returns a ValueFn that always yields the provided value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantValueFn(value float64) ValueFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantValueFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformValueFn returns a ValueFn sampling an integer uniformly in [min, max).
// A degenerate interval (max == min) yields min. If rng is nil, yields min to
// keep a deterministic fallback.
// Panics if min < 0 or max < min.
// Complexity: O(1) time, O(1) space.
func UniformValueFn(min, max int) ValueFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformValueFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min))
	}
}
