// SPDX-License-Identifier: MIT
// Package: rlcnet/builder
//
// impl_random_network.go - random series/parallel topology constructor.
//
// Contract:
//   - Requires an RNG (WithSeed/WithRand), otherwise ErrNeedRandSource.
//   - Every requested component appears exactly once in the result.
//   - Merge steps strictly alternate between Series and Parallel.
//   - Deterministic for a fixed seed.
//
// Complexity:
//   - Time:  O(T²) (removal from the pool slice), T = parts.Total().
//   - Space: O(T).

package builder

import (
	"math/rand"

	"github.com/katalvlaran/rlcnet/network"
)

// RandomNetwork returns a Constructor that builds a random topology from parts.
//
// The pool starts with one leaf per part: resistors first, then capacitors,
// then inductors, numbered from 0 per kind ("R0".."R{n-1}", "C0", ...), each
// valued by the configured ValueFn. While more than one item remains, a group
// of MinGroupSize..min(pool, cap) items is drawn at random, merged into a
// composition and pushed back. The first kind is drawn once (or fixed by
// WithStartKind) and then alternates.
//
// A single requested part yields that lone leaf.
func RandomNetwork(parts Parts) Constructor {
	return func(cfg builderConfig) (*network.Network, error) {
		if err := validateParts(MethodRandomNetwork, parts); err != nil {
			return nil, err
		}
		if cfg.rng == nil {
			return nil, builderErrorf(MethodRandomNetwork, ErrNeedRandSource, "use WithSeed or WithRand")
		}

		pool := make([]*network.Network, 0, parts.Total())
		pool = appendLeaves(pool, cfg, network.Resistor, parts.Resistors)
		pool = appendLeaves(pool, cfg, network.Capacitor, parts.Capacitors)
		pool = appendLeaves(pool, cfg, network.Inductor, parts.Inductors)

		kind := cfg.startKind
		if !kind.IsComposition() {
			kind = network.Series
			if cfg.rng.Intn(2) == 0 {
				kind = network.Parallel
			}
		}

		for len(pool) > 1 {
			size := groupSize(cfg.rng, len(pool), cfg.maxGroup)
			members := make([]*network.Network, 0, size)
			for i := 0; i < size; i++ {
				j := cfg.rng.Intn(len(pool))
				members = append(members, pool[j])
				pool = append(pool[:j], pool[j+1:]...)
			}
			pool = append(pool, network.NewComposition(kind, members...))
			kind = flip(kind)
		}

		if len(pool) != 1 {
			return nil, builderErrorf(MethodRandomNetwork, ErrConstructFailed, "pool ended with %d items", len(pool))
		}

		if err := network.Validate(pool[0]); err != nil {
			return nil, builderErrorf(MethodRandomNetwork, ErrConstructFailed, "%v", err)
		}

		return pool[0], nil
	}
}

// appendLeaves adds count components of kind k, named by the kind's prefix.
func appendLeaves(pool []*network.Network, cfg builderConfig, k network.Kind, count int) []*network.Network {
	id := SymbolNumberIDFn(cfg.prefixFor(k))
	for i := 0; i < count; i++ {
		pool = append(pool, network.NewComponent(k, id(i), cfg.valueFn(cfg.rng)))
	}

	return pool
}

// groupSize draws the member count of the next merge step, uniform in
// [MinGroupSize, upper] where upper is the pool size, capped by maxGroup
// when positive. Requires pool ≥ MinGroupSize.
func groupSize(rng *rand.Rand, pool, maxGroup int) int {
	upper := pool
	if maxGroup > 0 {
		c := maxGroup
		if c < MinGroupSize {
			c = MinGroupSize
		}
		if c < upper {
			upper = c
		}
	}

	return MinGroupSize + rng.Intn(upper-MinGroupSize+1)
}

// flip returns the other composition kind.
func flip(k network.Kind) network.Kind {
	if k == network.Series {
		return network.Parallel
	}

	return network.Series
}
