package simplify_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rlcnet/builder"
	"github.com/katalvlaran/rlcnet/network"
	"github.com/katalvlaran/rlcnet/simplify"
)

// shape is an exported mirror of a tree, so cmp can print readable diffs.
type shape struct {
	Kind     string
	ID       string
	Value    float64
	Children []shape
}

func shapeOf(n *network.Network) shape {
	s := shape{Kind: n.Kind().String(), ID: n.ID(), Value: n.Value()}
	for _, c := range n.Children() {
		s.Children = append(s.Children, shapeOf(c))
	}
	return s
}

// approx compares floats with a relative tolerance; the parallel fold order
// may change after inlining, so the last bits can differ.
func approx(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	switch {
	case math.IsNaN(want) || math.IsInf(want, 0) || want == 0:
		assert.Equal(t, want, got, msgAndArgs...)
	default:
		assert.InEpsilon(t, want, got, 1e-9, msgAndArgs...)
	}
}

func r(id string, v float64) *network.Network { return network.NewResistor(id, v) }

func TestSimplify_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   func() *network.Network
		want func() *network.Network
	}{
		{
			name: "leaf unchanged",
			in:   func() *network.Network { return r("R0", 1) },
			want: func() *network.Network { return r("R0", 1) },
		},
		{
			name: "series in series",
			in: func() *network.Network {
				return network.NewSeries(network.NewSeries(r("R0", 3), r("R1", 4)), r("R2", 5))
			},
			want: func() *network.Network {
				return network.NewSeries(r("R0", 3), r("R1", 4), r("R2", 5))
			},
		},
		{
			name: "inlined at the child position",
			in: func() *network.Network {
				return network.NewParallel(r("R0", 1), network.NewParallel(r("R1", 2), r("R2", 3)), r("R3", 4))
			},
			want: func() *network.Network {
				return network.NewParallel(r("R0", 1), r("R1", 2), r("R2", 3), r("R3", 4))
			},
		},
		{
			name: "alternating kinds kept",
			in: func() *network.Network {
				return network.NewSeries(r("R0", 1), network.NewParallel(r("R1", 2), network.NewSeries(r("R2", 3), r("R3", 4))))
			},
			want: func() *network.Network {
				return network.NewSeries(r("R0", 1), network.NewParallel(r("R1", 2), network.NewSeries(r("R2", 3), r("R3", 4))))
			},
		},
		{
			name: "deep same-kind chain collapses",
			in: func() *network.Network {
				return network.NewSeries(network.NewSeries(network.NewSeries(r("R0", 1), r("R1", 1)), r("R2", 1)), r("R3", 1))
			},
			want: func() *network.Network {
				return network.NewSeries(r("R0", 1), r("R1", 1), r("R2", 1), r("R3", 1))
			},
		},
		{
			name: "grandchild exposed by inner inlining",
			in: func() *network.Network {
				// Series(Parallel(Parallel(Series(R0,R1),R2),R3),R4)
				inner := network.NewParallel(network.NewSeries(r("R0", 1), r("R1", 1)), r("R2", 1))
				return network.NewSeries(network.NewParallel(inner, r("R3", 1)), r("R4", 1))
			},
			want: func() *network.Network {
				return network.NewSeries(network.NewParallel(network.NewSeries(r("R0", 1), r("R1", 1)), r("R2", 1), r("R3", 1)), r("R4", 1))
			},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := simplify.Simplify(tc.in())
			if diff := cmp.Diff(shapeOf(tc.want()), shapeOf(got)); diff != "" {
				t.Errorf("Simplify mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, simplify.Canonical(got))
		})
	}
}

func TestSimplify_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, simplify.Simplify(nil))
	assert.True(t, simplify.Canonical(nil))
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	assert.False(t, simplify.Canonical(network.NewSeries(network.NewSeries(r("R0", 1), r("R1", 1)), r("R2", 1))))
	assert.True(t, simplify.Canonical(network.NewSeries(network.NewParallel(r("R0", 1), r("R1", 1)), r("R2", 1))))
	assert.False(t, simplify.Canonical(network.NewSeries(r("R0", 1), nil, network.NewParallel(r("R1", 1), r("R2", 1)))),
		"nil child")
}

// TestSimplify_RandomProperties checks idempotence and electrical equivalence
// over many generated trees.
func TestSimplify_RandomProperties(t *testing.T) {
	t.Parallel()

	parts := builder.Parts{Resistors: 6, Capacitors: 2, Inductors: 2}
	for seed := int64(1); seed <= 200; seed++ {
		n, err := builder.Generate(parts, builder.WithSeed(seed))
		require.NoError(t, err)

		before := n.Clone()
		once := simplify.Simplify(n)
		twice := simplify.Simplify(once.Clone())

		require.True(t, simplify.Canonical(once), "seed %d", seed)
		if diff := cmp.Diff(shapeOf(once), shapeOf(twice)); diff != "" {
			t.Fatalf("seed %d: not idempotent (-once +twice):\n%s", seed, diff)
		}
		require.NoError(t, network.Validate(once))
		assert.Equal(t, len(before.Components()), len(once.Components()), "seed %d", seed)

		for _, reg := range []network.Regime{network.T0, network.Settled} {
			approx(t, before.Impedance(reg), once.Impedance(reg), "seed %d regime %s", seed, reg)

			want := before.Distribute(reg, 5)
			got := once.Distribute(reg, 5)
			for _, rd := range want.Readings() {
				g, ok := got.Get(rd.ID)
				require.True(t, ok)
				approx(t, rd.Voltage, g.Voltage, "seed %d %s %s", seed, reg, rd.ID)
			}
		}
	}
}

func TestSimplify_Impedance(t *testing.T) {
	t.Parallel()

	in := network.NewSeries(network.NewSeries(r("R0", 3), r("R1", 4)), r("R2", 5))
	for _, reg := range []network.Regime{network.T0, network.Settled} {
		assert.Equal(t, 12.0, in.Impedance(reg))
		assert.Equal(t, 12.0, simplify.Simplify(in.Clone()).Impedance(reg))
	}
}
