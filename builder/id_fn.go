// Package builder provides internal helper functions and types
// for configuring ID schemes in topology constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a component identifier from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// SymbolNumberIDFn returns prefix + decimal index, e.g. "R0", "R1", ...
// Complexity: O(d) where d is the number of decimal digits in idx.
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
