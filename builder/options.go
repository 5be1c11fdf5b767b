// SPDX-License-Identifier: MIT
// Package: rlcnet/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/rlcnet/network"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs. The RNG is not safe for concurrent use: give every
// goroutine its own.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the nominal value generator. Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithValueRange draws nominal values uniformly from the integers in [min,max).
// Panics under the same conditions as UniformValueFn.
func WithValueRange(min, max int) BuilderOption {
	return WithValueFn(UniformValueFn(min, max))
}

// WithPrefixes sets the ID prefixes of resistors, capacitors and inductors.
// Empty values mean “use defaults”. Panics if a prefix contains a decimal
// digit, or if two prefixes collide once defaults are filled in, since IDs
// would no longer be unique ("R"+"10" == "R1"+"0").
func WithPrefixes(resistor, capacitor, inductor string) BuilderOption {
	r := orDefault(resistor, DefaultResistorPrefix)
	c := orDefault(capacitor, DefaultCapacitorPrefix)
	l := orDefault(inductor, DefaultInductorPrefix)
	if strings.ContainsAny(r+c+l, "0123456789") || r == c || r == l || c == l {
		panic(fmt.Sprintf("builder: WithPrefixes(%q,%q,%q): prefixes must differ and contain no digits",
			resistor, capacitor, inductor))
	}
	return func(cfg *builderConfig) {
		cfg.resistorPrefix, cfg.capacitorPrefix, cfg.inductorPrefix = r, c, l
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// WithMaxGroup caps how many pool items a single merge step may take.
// 0 disables the cap; values 1 behave like 2 (a merge needs two members).
// Panics if k < 0.
func WithMaxGroup(k int) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithMaxGroup(%d): must be ≥ 0", k))
	}
	return func(c *builderConfig) {
		c.maxGroup = k
	}
}

// WithStartKind fixes the kind of the first merge step instead of drawing it.
// Panics unless kind is network.Series or network.Parallel.
func WithStartKind(kind network.Kind) BuilderOption {
	if !kind.IsComposition() {
		panic(fmt.Sprintf("builder: WithStartKind(%s): not a composition kind", kind))
	}
	return func(c *builderConfig) {
		c.startKind = kind
	}
}
