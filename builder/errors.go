// SPDX-License-Identifier: MIT
// Package: rlcnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewParts indicates a negative part count or an empty parts request.
// Usage: if errors.Is(err, ErrTooFewParts) { /* report invalid counts */ }.
var ErrTooFewParts = errors.New("builder: too few parts")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
// Usage: pass WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrConstructFailed indicates a construction that could not proceed
// (nil constructor, invariant broken by a custom option).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf formats "<method>: <message>: <sentinel>" keeping the
// sentinel reachable through errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
