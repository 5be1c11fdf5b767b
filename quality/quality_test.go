package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rlcnet/network"
	"github.com/katalvlaran/rlcnet/quality"
)

func r(id string, v float64) *network.Network { return network.NewResistor(id, v) }

func TestMaxComponentsPerCircuit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    *network.Network
		want int
	}{
		{"nil", nil, 0},
		{"lone leaf", r("R0", 1), 1},
		{"flat series", network.NewSeries(r("R0", 1), r("R1", 1), r("R2", 1)), 3},
		{
			name: "deepest node wins",
			// Series(R0, Parallel(R1,R2,R3,R4))
			n:    network.NewSeries(r("R0", 1), network.NewParallel(r("R1", 1), r("R2", 1), r("R3", 1), r("R4", 1))),
			want: 4,
		},
		{
			name: "composition children do not count",
			n: network.NewParallel(
				network.NewSeries(r("R0", 1), r("R1", 1)),
				network.NewSeries(r("R2", 1), r("R3", 1)),
			),
			want: 2,
		},
		{"nil child skipped", network.NewSeries(r("R0", 1), nil, r("R1", 1)), 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, quality.MaxComponentsPerCircuit(tc.n))
		})
	}
}

func TestUselessResistors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    *network.Network
		want int
	}{
		{"nil", nil, 0},
		{"plain divider", network.NewSeries(r("R0", 5), r("R1", 10)), 0},
		{
			name: "behind an open capacitor",
			n:    network.NewSeries(r("R0", 5), network.NewCapacitor("C0", 3)),
			want: 1,
		},
		{
			name: "shorted by an inductor",
			n:    network.NewSeries(r("R0", 5), network.NewParallel(r("R1", 4), r("R2", 6), network.NewInductor("L0", 1))),
			want: 2,
		},
		{
			name: "capacitor with zero voltage is not counted",
			n:    network.NewParallel(network.NewCapacitor("C0", 1), network.NewInductor("L0", 1)),
			want: 0,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, quality.UselessResistors(tc.n))
		})
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	// Series(R0, Parallel(R1,R2,L0)): 3 leaves under Parallel, 2 useless
	n := network.NewSeries(r("R0", 5), network.NewParallel(r("R1", 4), r("R2", 6), network.NewInductor("L0", 1)))

	m := quality.Measure(n)
	assert.Equal(t, quality.Metrics{MaxComponentsPerCircuit: 3, UselessResistors: 2}, m)
	assert.Equal(t, "maxComponents=3 useless=2", m.String())

	require.NoError(t, quality.Check(n, quality.Limits{MaxComponentsPerCircuit: 3, MaxUselessResistors: 2}))
	assert.True(t, quality.Accept(n, quality.Limits{MaxComponentsPerCircuit: 3, MaxUselessResistors: 2}))

	err := quality.Check(n, quality.Limits{MaxComponentsPerCircuit: 2, MaxUselessResistors: 0})
	assert.ErrorIs(t, err, quality.ErrTooManyComponents, "component bound is checked first")

	err = quality.Check(n, quality.Limits{MaxComponentsPerCircuit: 3, MaxUselessResistors: 1})
	assert.ErrorIs(t, err, quality.ErrTooManyUselessResistors)
	assert.Contains(t, err.Error(), "2 > 1")
	assert.False(t, quality.Accept(n, quality.Limits{MaxComponentsPerCircuit: 3, MaxUselessResistors: 1}))
}
