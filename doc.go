// Package rlcnet generates random resistor/capacitor/inductor exercises and
// solves them at the two classic instants: t0, right after the supply is
// switched on, and tInf, once the circuit has settled.
//
// What is in the box?
//
//	• Topology model: components (R, C, L) and Series/Parallel compositions
//	• Evaluation: aggregate impedance and per-component voltage/current tables
//	• Generator: random series/parallel trees from a parts list
//	• Simplifier: canonical form without same-kind nesting
//	• Quality filter: per-circuit size and useless-resistor bounds
//	• Search: bounded, optionally parallel generate-and-check loop
//	• Output: task/solution text files, PNG schematic, run archive
//
// Ideal elements only: a capacitor is a short at t0 and open at tInf, an
// inductor is open at t0 and a short at tInf, a resistor is its value at both.
// Zero and infinite impedances are ordinary values with explicit rules, see
// package network.
//
// Packages:
//
//	network/   - Network tree, Impedance, Distribute, Walk, Validate
//	simplify/  - Simplify and Canonical
//	builder/   - functional-options random topology generator
//	quality/   - MaxComponentsPerCircuit, UselessResistors, Check
//	search/    - Find: generate → simplify → check, with a retry budget
//	schematic/ - Draw contract and PNG rendering (gonum/plot vgimg)
//	exercise/  - Sheet, task/solution formats, Writer, console tables
//	store/     - SQLite run counter and exercise archive
//	config/    - YAML configuration
//	cmd/rlcgen - command line
//
// Quick start:
//
//	res, err := search.Find(ctx, search.Request{
//		Parts:  builder.Parts{Resistors: 7, Capacitors: 1, Inductors: 1},
//		Limits: quality.Limits{MaxComponentsPerCircuit: 3, MaxUselessResistors: 3},
//		Seed:   42,
//	})
//	sheet := exercise.NewSheet(res.Network, network.Settled, 9)
//	fmt.Print(sheet.Solution())
package rlcnet
