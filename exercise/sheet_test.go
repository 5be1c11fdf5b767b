package exercise_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rlcnet/exercise"
	"github.com/katalvlaran/rlcnet/network"
	"github.com/katalvlaran/rlcnet/schematic"
)

// sample builds Series(R0, Parallel(C0, L0), R1).
func sample() *network.Network {
	return network.NewSeries(
		network.NewResistor("R0", 5),
		network.NewParallel(network.NewCapacitor("C0", 7), network.NewInductor("L0", 9)),
		network.NewResistor("R1", 11),
	)
}

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{1.0 / 3, 0.333},
		{1.23456, 1.235},
		{12, 12},
		{0, 0},
		{math.Inf(1), math.Inf(1)},
		{math.Inf(-1), math.Inf(-1)},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, exercise.Round(tc.in), "Round(%v)", tc.in)
	}
	assert.True(t, math.IsNaN(exercise.Round(math.NaN())))
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5", exercise.FormatNumber(5))
	assert.Equal(t, "0.333", exercise.FormatNumber(0.333))
	assert.Equal(t, "1500000", exercise.FormatNumber(1.5e6))
	assert.Equal(t, "Infinity", exercise.FormatNumber(math.Inf(1)))
	assert.Equal(t, "-Infinity", exercise.FormatNumber(math.Inf(-1)))
	assert.Equal(t, "NaN", exercise.FormatNumber(math.NaN()))
}

func TestSheet_Solution(t *testing.T) {
	t.Parallel()

	s := exercise.NewSheet(sample(), network.T0, 8)
	assert.Equal(t, 16.0, s.Resistance)
	assert.Equal(t, 0.5, s.Current)
	assert.Equal(t, "Series(R,Parallel(C,L),R)\n\n"+
		"16 Ω  8V  0.5A\n"+
		"component: [Resistance, Voltage, Current]\n"+
		"R0: [5, 2.5, 0.5]\n"+
		"R1: [11, 5.5, 0.5]\n"+
		"C0: [0, 0, Infinity]\n"+
		"L0: [Infinity, 0, 0]\n", s.Solution())

	s = exercise.NewSheet(sample(), network.Settled, 8)
	assert.Equal(t, "Series(R,Parallel(C,L),R)\n\n"+
		"16 Ω  8V  0.5A\n"+
		"component: [Resistance, Voltage, Current]\n"+
		"R0: [5, 2.5, 0.5]\n"+
		"R1: [11, 5.5, 0.5]\n"+
		"C0: [Infinity, 0, 0]\n"+
		"L0: [0, 0, Infinity]\n", s.Solution())
}

func TestSheet_OpenCircuitTotals(t *testing.T) {
	t.Parallel()

	n := network.NewSeries(network.NewResistor("R0", 3), network.NewCapacitor("C0", 1))
	s := exercise.NewSheet(n, network.Settled, 6)
	assert.True(t, math.IsInf(s.Resistance, 1))
	assert.Equal(t, 0.0, s.Current)
	assert.Contains(t, s.Solution(), "Infinity Ω  6V  0A\n")
	assert.Contains(t, s.Solution(), "C0: [Infinity, 6, 0]\n")
}

func TestSheet_Task(t *testing.T) {
	t.Parallel()

	s := exercise.NewSheet(sample(), network.T0, 8)
	assert.Equal(t, "Series(R,Parallel(C,L),R)\n\n8V\nR0: 5 Ω\nR1: 11 Ω\n", s.Task())
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	s := exercise.NewSheet(sample(), network.T0, 8)

	ascii := exercise.RenderTable(s, exercise.ASCII)
	assert.Contains(t, ascii, "R0")
	assert.Contains(t, ascii, "Infinity")
	assert.Contains(t, ascii, "│")

	md := exercise.RenderTable(s, exercise.Markdown)
	assert.Contains(t, md, "| R1 |")
	assert.Contains(t, md, "Resistance (Ω)")
}

func TestWriter(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	w := exercise.Writer{Dir: dir}
	paths, err := w.Write(exercise.Exercise{
		Run:     "7",
		Network: sample(),
		Voltage: 8,
		Regimes: []network.Regime{network.T0, network.Settled},
		Layout:  schematic.DefaultLayout(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "7 Task.txt"),
		filepath.Join(dir, "7 t0 Solution.txt"),
		filepath.Join(dir, "7 tInf Solution.txt"),
		filepath.Join(dir, "7 Image.png"),
	}, paths)

	task, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, exercise.NewSheet(sample(), network.T0, 8).Task(), string(task))

	sol, err := os.ReadFile(paths[2])
	require.NoError(t, err)
	assert.Equal(t, exercise.NewSheet(sample(), network.Settled, 8).Solution(), string(sol))

	img, err := os.ReadFile(paths[3])
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(img[:4]))
}

func TestWriter_Errors(t *testing.T) {
	t.Parallel()

	w := exercise.Writer{Dir: t.TempDir()}
	_, err := w.Write(exercise.Exercise{Run: "1", Network: sample(), Layout: schematic.DefaultLayout()})
	assert.ErrorIs(t, err, exercise.ErrNoRegimes)

	_, err = w.Write(exercise.Exercise{Run: "1", Regimes: []network.Regime{network.T0}})
	assert.ErrorIs(t, err, network.ErrNilNetwork)
}
