package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rlcnet/builder"
	"github.com/katalvlaran/rlcnet/config"
	"github.com/katalvlaran/rlcnet/exercise"
	"github.com/katalvlaran/rlcnet/search"
	"github.com/katalvlaran/rlcnet/store"
)

// defaultRun labels the files when the run counter is unavailable.
const defaultRun = "default"

type rootFlags struct {
	configPath string
	verbose    bool

	nRes, nCap, nInd    int
	minPart, maxPart    int
	minV, maxV          int
	maxComp, maxUseless int
	cWidth, cHeight     int
	lines               int
	timeConf            string

	out, storePath string
	seed           int64
	workers        int
	maxAttempts    int
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "rlcgen",
		Short: "Generate random RLC circuit exercises",
		Long: "rlcgen builds a random series/parallel network of resistors, capacitors and\n" +
			"inductors, keeps it only if it passes the quality limits, and writes a task,\n" +
			"solutions at t0 and/or tInf and a schematic image.",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &f)
		},
	}

	p := cmd.PersistentFlags()
	p.StringVar(&f.configPath, "config", "", "YAML configuration file")
	p.BoolVarP(&f.verbose, "verbose", "v", false, "log rejected attempts")
	p.IntVar(&f.nRes, "res", 0, "number of resistors")
	p.IntVar(&f.nCap, "cap", 0, "number of capacitors")
	p.IntVar(&f.nInd, "ind", 0, "number of inductors")
	p.IntVar(&f.minPart, "min-part", 0, "minimum part value")
	p.IntVar(&f.maxPart, "max-part", 0, "maximum part value (exclusive)")
	p.IntVar(&f.minV, "min-v", 0, "minimum voltage")
	p.IntVar(&f.maxV, "max-v", 0, "maximum voltage (exclusive)")
	p.IntVar(&f.maxComp, "max-comp", 0, "maximum components per circuit (0 = parts/3)")
	p.IntVar(&f.maxUseless, "max-useless", 0, "maximum shorted or blocked resistors")
	p.IntVar(&f.cWidth, "c-width", 0, "component width in pixels")
	p.IntVar(&f.cHeight, "c-height", 0, "component height in pixels")
	p.IntVar(&f.lines, "lines", 0, "length of vertical connections in pixels")
	p.StringVar(&f.timeConf, "time", "", `"t0", "tInf" or "both"`)
	p.StringVar(&f.out, "out", "", "output directory")
	p.StringVar(&f.storePath, "store", "", "run database path")
	p.Int64Var(&f.seed, "seed", 0, "random seed (0 = time based)")
	p.IntVar(&f.workers, "workers", 0, "concurrent attempts")
	p.IntVar(&f.maxAttempts, "max-attempts", 0, "attempt budget")

	cmd.AddCommand(newShowCmd(&f))
	cmd.AddCommand(newHistoryCmd(&f))

	return cmd
}

// resolveConfig loads the configuration file, if any, and applies every flag
// the user set on top of it.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	setInt := func(name string, dst *int, v int) {
		if changed(name) {
			*dst = v
		}
	}
	setInt("res", &cfg.Parts.Resistors, f.nRes)
	setInt("cap", &cfg.Parts.Capacitors, f.nCap)
	setInt("ind", &cfg.Parts.Inductors, f.nInd)
	setInt("min-part", &cfg.Values.Min, f.minPart)
	setInt("max-part", &cfg.Values.Max, f.maxPart)
	setInt("min-v", &cfg.Voltage.Min, f.minV)
	setInt("max-v", &cfg.Voltage.Max, f.maxV)
	setInt("max-comp", &cfg.Limits.MaxComponentsPerCircuit, f.maxComp)
	setInt("max-useless", &cfg.Limits.MaxUselessResistors, f.maxUseless)
	setInt("c-width", &cfg.Layout.ComponentWidth, f.cWidth)
	setInt("c-height", &cfg.Layout.ComponentHeight, f.cHeight)
	setInt("lines", &cfg.Layout.LineLength, f.lines)
	setInt("workers", &cfg.Search.Workers, f.workers)
	setInt("max-attempts", &cfg.Search.MaxAttempts, f.maxAttempts)
	if changed("time") {
		cfg.Time = f.timeConf
	}
	if changed("out") {
		cfg.Output.Dir = f.out
	}
	if changed("store") {
		cfg.Output.Store = f.storePath
	}
	if changed("seed") {
		cfg.Search.Seed = f.seed
	}
	if cfg.Search.Seed == 0 {
		cfg.Search.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// generated is an accepted network with the supply drawn for it.
type generated struct {
	result  *search.Result
	voltage float64
}

func generate(cmd *cobra.Command, cfg *config.Config, log *slog.Logger) (*generated, error) {
	res, err := search.Find(cmd.Context(), search.Request{
		Parts:       cfg.BuilderParts(),
		Limits:      cfg.ResolvedLimits(),
		MinValue:    cfg.Values.Min,
		MaxValue:    cfg.Values.Max,
		MaxAttempts: cfg.Search.MaxAttempts,
		Workers:     cfg.Search.Workers,
		Seed:        cfg.Search.Seed,
	}, search.WithLogger(log))
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Search.Seed))
	voltage := builder.UniformValueFn(cfg.Voltage.Min, cfg.Voltage.Max)(rng)

	return &generated{result: res, voltage: voltage}, nil
}

func runGenerate(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), f.verbose)

	g, err := generate(cmd, cfg, log)
	if err != nil {
		return err
	}
	regimes, _ := cfg.Regimes()

	// without a run counter the files are still written, labelled "default"
	run, runNum := defaultRun, 0
	st, err := store.Open(cfg.Output.Store)
	if err != nil {
		log.Warn("run counter unavailable", slog.String("store", cfg.Output.Store), slog.String("error", err.Error()))
	} else {
		defer st.Close()
		if runNum, err = st.NextRun(cmd.Context()); err != nil {
			log.Warn("run counter unavailable", slog.String("error", err.Error()))
		} else {
			run = strconv.Itoa(runNum)
		}
	}

	paths, err := exercise.Writer{Dir: cfg.Output.Dir}.Write(exercise.Exercise{
		Run:     run,
		Network: g.result.Network,
		Voltage: g.voltage,
		Regimes: regimes,
		Layout:  cfg.Layout,
	})
	if err != nil {
		return err
	}

	if runNum > 0 {
		rec, err := st.SaveExercise(cmd.Context(), store.Record{
			Run:      runNum,
			Topology: fmt.Sprintf("%+v", g.result.Network),
			Voltage:  g.voltage,
			Regimes:  cfg.Time,
			Seed:     cfg.Search.Seed,
			Attempts: g.result.Attempts,
		})
		if err != nil {
			log.Warn("exercise not archived", slog.String("error", err.Error()))
		} else {
			log.Debug("exercise archived", slog.String("id", rec.ID))
		}
	}

	out := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	return nil
}
