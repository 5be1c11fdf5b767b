// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rlcnet/network"
)

// TestDefaults verifies the deterministic defaults of newBuilderConfig.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no RNG unless requested")
	assert.Equal(t, DefaultResistorPrefix, cfg.prefixFor(network.Resistor))
	assert.Equal(t, DefaultCapacitorPrefix, cfg.prefixFor(network.Capacitor))
	assert.Equal(t, DefaultInductorPrefix, cfg.prefixFor(network.Inductor))
	assert.Equal(t, 0, cfg.maxGroup)
	assert.Equal(t, network.Invalid, cfg.startKind)

	// nil rng → lower bound of the default range
	require.NotNil(t, cfg.valueFn)
	assert.Equal(t, float64(DefaultMinPartValue), cfg.valueFn(nil))
}

// TestRNGOptions verifies reproducibility with WithSeed and explicit WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "draw %d", i)
	}

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(7), WithRand(r))
	assert.Same(t, r, c.rng, "last option wins")
}

// TestPrefixOptions verifies prefix overrides and the empty-means-default rule.
func TestPrefixOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPrefixes("Res", "", "Ind"))
	assert.Equal(t, "Res", cfg.prefixFor(network.Resistor))
	assert.Equal(t, DefaultCapacitorPrefix, cfg.prefixFor(network.Capacitor))
	assert.Equal(t, "Ind", cfg.prefixFor(network.Inductor))
}

// TestOptionPanics verifies that option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithValueFn(nil) })
	assert.Panics(t, func() { WithValueRange(10, 5) })
	assert.Panics(t, func() { WithMaxGroup(-1) })
	assert.Panics(t, func() { WithStartKind(network.Resistor) })
	assert.Panics(t, func() { WithPrefixes("X", "X", "") })
	assert.Panics(t, func() { WithPrefixes("", "Y", "Y") })
	assert.Panics(t, func() { WithPrefixes("", "R", "") }, "collides with the default resistor prefix")
	assert.Panics(t, func() { WithPrefixes("R", "R1", "L") }, "R10 would be both the 11th resistor and a capacitor")
	assert.Panics(t, func() { WithPrefixes("R2D", "", "") })
	assert.NotPanics(t, func() { WithPrefixes("", "", "") })
	assert.NotPanics(t, func() { WithPrefixes("Res", "Cap", "Ind") })
}

// TestRandomNetwork_RejectsDuplicateIDs verifies that a config bypassing the
// option checks still cannot yield a tree with clashing IDs.
func TestRandomNetwork_RejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSeed(1))
	cfg.capacitorPrefix = cfg.resistorPrefix
	n, err := RandomNetwork(Parts{Resistors: 2, Capacitors: 1})(cfg)
	assert.Nil(t, n)
	assert.ErrorIs(t, err, ErrConstructFailed)
}

// TestGroupSize verifies the bounds of the merge group size.
func TestGroupSize(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		k := groupSize(rng, 9, 0)
		assert.GreaterOrEqual(t, k, MinGroupSize)
		assert.LessOrEqual(t, k, 9)

		k = groupSize(rng, 9, 3)
		assert.GreaterOrEqual(t, k, MinGroupSize)
		assert.LessOrEqual(t, k, 3)

		// a cap below two behaves like two
		assert.Equal(t, MinGroupSize, groupSize(rng, 9, 1))
		assert.Equal(t, MinGroupSize, groupSize(rng, 2, 0))
	}
}
