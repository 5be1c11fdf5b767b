// Package config loads the generator settings from YAML.
//
// A missing file is not an error for the CLI: it starts from Default and
// applies flags on top. Fields absent from a file keep their default value.
//
//	parts:   {resistors: 7, capacitors: 1, inductors: 1}
//	values:  {min: 5, max: 20}
//	voltage: {min: 1, max: 10}
//	limits:  {maxComponentsPerCircuit: 0, maxUselessResistors: 3}
//	time:    both
//	layout:  {componentWidth: 25, componentHeight: 50, lineLength: 15, gap: 30}
//	search:  {maxAttempts: 10000, workers: 1, seed: 0}
//	output:  {dir: ".", store: "rlcnet.db"}
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rlcnet/builder"
	"github.com/katalvlaran/rlcnet/network"
	"github.com/katalvlaran/rlcnet/quality"
	"github.com/katalvlaran/rlcnet/schematic"
	"github.com/katalvlaran/rlcnet/search"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// TimeBoth selects both regimes.
const TimeBoth = "both"

// Config is the complete generator configuration.
type Config struct {
	Parts   Parts            `yaml:"parts"`
	Values  Range            `yaml:"values"`
	Voltage Range            `yaml:"voltage"`
	Limits  quality.Limits   `yaml:"limits"`
	Time    string           `yaml:"time"`
	Layout  schematic.Layout `yaml:"layout"`
	Search  Search           `yaml:"search"`
	Output  Output           `yaml:"output"`
}

// Parts is the number of components of each kind.
type Parts struct {
	Resistors  int `yaml:"resistors"`
	Capacitors int `yaml:"capacitors"`
	Inductors  int `yaml:"inductors"`
}

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Search tunes the acceptance loop. Seed 0 means time based.
type Search struct {
	MaxAttempts int   `yaml:"maxAttempts"`
	Workers     int   `yaml:"workers"`
	Seed        int64 `yaml:"seed"`
}

// Output locates the written files and the run database.
type Output struct {
	Dir   string `yaml:"dir"`
	Store string `yaml:"store"`
}

// Default returns the stock configuration: 7 resistors, 1 capacitor and
// 1 inductor valued 5..20, a 1..10 V supply and both regimes.
func Default() *Config {
	return &Config{
		Parts:   Parts{Resistors: 7, Capacitors: 1, Inductors: 1},
		Values:  Range{Min: builder.DefaultMinPartValue, Max: builder.DefaultMaxPartValue},
		Voltage: Range{Min: 1, Max: 10},
		Limits:  quality.Limits{MaxComponentsPerCircuit: 0, MaxUselessResistors: 3},
		Time:    TimeBoth,
		Layout:  schematic.DefaultLayout(),
		Search:  Search{MaxAttempts: search.DefaultMaxAttempts, Workers: 1},
		Output:  Output{Dir: ".", Store: "rlcnet.db"},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func invalid(field string, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	p := c.Parts
	switch {
	case p.Resistors < 0 || p.Capacitors < 0 || p.Inductors < 0:
		return invalid("parts", "counts must be ≥ 0")
	case c.TotalParts() < 1:
		return invalid("parts", "need at least one part")
	case c.Values.Min < 0 || c.Values.Max < c.Values.Min:
		return invalid("values", "need 0 ≤ min ≤ max, got [%d,%d)", c.Values.Min, c.Values.Max)
	case c.Voltage.Min < 1 || c.Voltage.Max < c.Voltage.Min:
		return invalid("voltage", "need 1 ≤ min ≤ max, got [%d,%d)", c.Voltage.Min, c.Voltage.Max)
	case c.Limits.MaxComponentsPerCircuit < 0:
		return invalid("limits.maxComponentsPerCircuit", "must be ≥ 0")
	case c.Limits.MaxUselessResistors < 0:
		return invalid("limits.maxUselessResistors", "must be ≥ 0")
	case c.Search.MaxAttempts < 0:
		return invalid("search.maxAttempts", "must be ≥ 0")
	case c.Search.Workers < 0:
		return invalid("search.workers", "must be ≥ 0")
	case c.Output.Dir == "":
		return invalid("output.dir", "empty")
	}
	if _, err := c.Regimes(); err != nil {
		return invalid("time", "%v", err)
	}
	if err := c.Layout.Validate(); err != nil {
		return invalid("layout", "%v", err)
	}

	return nil
}

// TotalParts returns the number of requested components.
func (c *Config) TotalParts() int {
	return c.Parts.Resistors + c.Parts.Capacitors + c.Parts.Inductors
}

// BuilderParts converts Parts for the builder.
func (c *Config) BuilderParts() builder.Parts {
	return builder.Parts{
		Resistors:  c.Parts.Resistors,
		Capacitors: c.Parts.Capacitors,
		Inductors:  c.Parts.Inductors,
	}
}

// ResolvedLimits returns the quality limits. A zero component bound becomes a third
// of the parts, at least 2.
func (c *Config) ResolvedLimits() quality.Limits {
	lim := c.Limits
	if lim.MaxComponentsPerCircuit == 0 {
		lim.MaxComponentsPerCircuit = max(c.TotalParts()/3, builder.MinGroupSize)
	}
	return lim
}

// Regimes returns the solution regimes selected by Time.
func (c *Config) Regimes() ([]network.Regime, error) {
	if c.Time == TimeBoth {
		return []network.Regime{network.T0, network.Settled}, nil
	}
	r, err := network.ParseRegime(c.Time)
	if err != nil {
		return nil, err
	}
	return []network.Regime{r}, nil
}
