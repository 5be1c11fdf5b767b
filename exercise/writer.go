package exercise

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/rlcnet/network"
	"github.com/katalvlaran/rlcnet/schematic"
)

// ErrNoRegimes reports an exercise without any solution regime.
var ErrNoRegimes = errors.New("exercise: no regimes")

// Exercise is everything needed to write one run to disk.
type Exercise struct {
	// Run labels the files, e.g. "12" or "default".
	Run     string
	Network *network.Network
	// Voltage is shared by the task and every solution.
	Voltage float64
	Regimes []network.Regime
	Layout  schematic.Layout
}

// Writer writes exercises into Dir, creating it when missing.
type Writer struct {
	Dir string
}

// TaskName returns "<run> Task.txt".
func TaskName(run string) string { return run + " Task.txt" }

// SolutionName returns "<run> <regime> Solution.txt", e.g. "3 tInf Solution.txt".
func SolutionName(run string, r network.Regime) string {
	return fmt.Sprintf("%s %s Solution.txt", run, r)
}

// ImageName returns "<run> Image.png".
func ImageName(run string) string { return run + " Image.png" }

// Write writes the task, the solutions and the image of ex and returns the
// written paths in that order.
func (w Writer) Write(ex Exercise) ([]string, error) {
	if ex.Network == nil {
		return nil, fmt.Errorf("Write: %w", network.ErrNilNetwork)
	}
	if len(ex.Regimes) == 0 {
		return nil, fmt.Errorf("Write: run %s: %w", ex.Run, ErrNoRegimes)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("Write: %w", err)
	}

	var paths []string
	save := func(name string, fn func(io.Writer) error) error {
		p := filepath.Join(w.Dir, name)
		if err := writeFile(p, fn); err != nil {
			return fmt.Errorf("Write: %s: %w", name, err)
		}
		paths = append(paths, p)
		return nil
	}

	// resistor values do not depend on the regime
	task := NewSheet(ex.Network, network.T0, ex.Voltage)
	if err := save(TaskName(ex.Run), task.WriteTask); err != nil {
		return paths, err
	}
	for _, r := range ex.Regimes {
		sheet := NewSheet(ex.Network, r, ex.Voltage)
		if err := save(SolutionName(ex.Run, r), sheet.WriteSolution); err != nil {
			return paths, err
		}
	}
	err := save(ImageName(ex.Run), func(out io.Writer) error {
		return schematic.RenderPNG(out, ex.Network, ex.Layout)
	})

	return paths, err
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(f)
}
