// SPDX-License-Identifier: MIT
// Package: rlcnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, con). Resolves cfg, runs the constructor.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical trees.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rlcnet/network"
)

// Parts is the number of components of each kind to generate.
type Parts struct {
	Resistors  int
	Capacitors int
	Inductors  int
}

// Total returns the number of components requested.
func (p Parts) Total() int {
	return p.Resistors + p.Capacitors + p.Inductors
}

// Constructor produces a topology using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config.
type Constructor func(cfg builderConfig) (*network.Network, error)

// Build resolves the builder configuration from bopts and runs con.
// Any constructor error is wrapped with the context "Build: %w".
//
// Errors:
//   - ErrConstructFailed if con is nil.
//   - whatever con returns, wrapped; branch with errors.Is.
func Build(bopts []BuilderOption, con Constructor) (*network.Network, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	n, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return n, nil
}

// Generate is shorthand for Build(opts, RandomNetwork(parts)).
// Complexity: O(T²) for T = parts.Total() (pool removals), O(T) space.
func Generate(parts Parts, opts ...BuilderOption) (*network.Network, error) {
	return Build(opts, RandomNetwork(parts))
}
