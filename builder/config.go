// SPDX-License-Identifier: MIT
// Package: rlcnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil                    (RandomNetwork requires one)
//   • valueFn    = UniformValueFn(5, 20)
//   • prefixes   = "R" / "C" / "L"
//   • maxGroup   = 0                      (no cap beyond the pool size)
//   • startKind  = network.Invalid        (drawn at random)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/rlcnet/network"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Nominal value generator for every component.
	valueFn ValueFn

	// Per-kind ID prefixes. Empty → defaults resolved below.
	resistorPrefix  string
	capacitorPrefix string
	inductorPrefix  string

	// Upper bound of the group size of a merge step; 0 means unbounded.
	maxGroup int
	// Kind of the first merge step; network.Invalid means random.
	startKind network.Kind
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Empty prefixes fall back to the defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:             nil,
		valueFn:         UniformValueFn(DefaultMinPartValue, DefaultMaxPartValue),
		resistorPrefix:  DefaultResistorPrefix,
		capacitorPrefix: DefaultCapacitorPrefix,
		inductorPrefix:  DefaultInductorPrefix,
		maxGroup:        0,
		startKind:       network.Invalid,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.resistorPrefix == "" {
		cfg.resistorPrefix = DefaultResistorPrefix
	}
	if cfg.capacitorPrefix == "" {
		cfg.capacitorPrefix = DefaultCapacitorPrefix
	}
	if cfg.inductorPrefix == "" {
		cfg.inductorPrefix = DefaultInductorPrefix
	}

	return cfg
}

// prefixFor returns the ID prefix of a component kind.
func (c builderConfig) prefixFor(k network.Kind) string {
	switch k {
	case network.Capacitor:
		return c.capacitorPrefix
	case network.Inductor:
		return c.inductorPrefix
	default:
		return c.resistorPrefix
	}
}
