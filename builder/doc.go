// Package builder generates random RLC topologies in the "functional-options"
// style: a Constructor produces a tree from an immutable builderConfig that is
// resolved from BuilderOption values.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, value distribution, ID prefixes, group cap.
//   - Component ID scheme (IDFn):
//     – SymbolNumberIDFn:  prefix + decimal ("R0","R1",…).
//   - Nominal value distributions (ValueFn implementations):
//     – ConstantValueFn:   fixed value.
//     – UniformValueFn:    uniform integer in [min,max).
//   - Constructors:
//     – RandomNetwork:     random series/parallel grouping of a parts pool.
//
// Merge algorithm (RandomNetwork):
//
//	pool ← one leaf per requested part (R…, then C…, then L…)
//	kind ← Series or Parallel, drawn once
//	while |pool| > 1:
//	    k ← uniform in [2, min(|pool|, cap)]
//	    take k members uniformly at random, without replacement
//	    push Composition(kind, members) back into the pool
//	    kind ← the other composition kind
//	return the last node
//
// Guarantees:
//
//   - Deterministic for a fixed seed, parts and options.
//   - Component IDs are unique: sequential per kind with distinct prefixes.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (sentinels wrapped with method context).
//
// The generated tree is usually not canonical; run simplify.Simplify on it.
package builder
