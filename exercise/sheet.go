package exercise

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/rlcnet/network"
)

// Round rounds v to three decimals. 0, ±Inf and NaN are returned unchanged.
func Round(v float64) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v*1000) / 1000
}

// FormatNumber prints v in its shortest decimal form; infinities print as
// "Infinity" and "-Infinity".
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Sheet is the evaluated network at one regime, already rounded.
type Sheet struct {
	Topology   string
	Regime     network.Regime
	Voltage    float64
	Resistance float64
	Current    float64
	Readings   []network.Reading
}

// NewSheet evaluates n at regime r under the supply voltage.
// Complexity: O(N log N) for the sorted readings.
func NewSheet(n *network.Network, r network.Regime, voltage float64) *Sheet {
	z := n.Impedance(r)
	readings := n.Distribute(r, voltage).Sorted()
	for i := range readings {
		readings[i].Impedance = Round(readings[i].Impedance)
		readings[i].Voltage = Round(readings[i].Voltage)
		readings[i].Current = Round(readings[i].Current)
	}

	return &Sheet{
		Topology:   n.String(),
		Regime:     r,
		Voltage:    voltage,
		Resistance: Round(z),
		Current:    Round(voltage / z),
		Readings:   readings,
	}
}

// WriteTask writes the student's view: topology, supply and resistor values.
func (s *Sheet) WriteTask(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%sV\n", s.Topology, FormatNumber(s.Voltage))
	for _, rd := range s.Readings {
		if rd.Kind != network.Resistor {
			continue
		}
		fmt.Fprintf(&b, "%s: %s Ω\n", rd.ID, FormatNumber(rd.Impedance))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSolution writes totals and the full per-component table.
func (s *Sheet) WriteSolution(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s Ω  %sV  %sA\ncomponent: [Resistance, Voltage, Current]\n",
		s.Topology, FormatNumber(s.Resistance), FormatNumber(s.Voltage), FormatNumber(s.Current))
	for _, rd := range s.Readings {
		fmt.Fprintf(&b, "%s: [%s, %s, %s]\n", rd.ID,
			FormatNumber(rd.Impedance), FormatNumber(rd.Voltage), FormatNumber(rd.Current))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Task returns WriteTask as a string.
func (s *Sheet) Task() string {
	var b strings.Builder
	_ = s.WriteTask(&b)
	return b.String()
}

// Solution returns WriteSolution as a string.
func (s *Sheet) Solution() string {
	var b strings.Builder
	_ = s.WriteSolution(&b)
	return b.String()
}
