// Package builder defines shared constants used by the topology generator.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

// MethodRandomNetwork is the canonical name for the RandomNetwork constructor.
const MethodRandomNetwork = "RandomNetwork"

//-----------------------------------------------------------------------------
// Component Defaults
//-----------------------------------------------------------------------------

// DefaultResistorPrefix, DefaultCapacitorPrefix and DefaultInductorPrefix are
// the ID prefixes used when no WithPrefixes option is given ("R0", "C0", "L0").
const (
	DefaultResistorPrefix  = "R"
	DefaultCapacitorPrefix = "C"
	DefaultInductorPrefix  = "L"
)

// DefaultMinPartValue is the inclusive lower bound of nominal values.
const DefaultMinPartValue = 5

// DefaultMaxPartValue is the exclusive upper bound of nominal values.
const DefaultMaxPartValue = 20

// MinGroupSize is the smallest number of members a composition is built from.
const MinGroupSize = 2
