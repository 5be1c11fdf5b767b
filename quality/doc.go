// Package quality holds the structural acceptance checks applied to a
// canonical topology before it is turned into an exercise.
//
// Two metrics are measured:
//
//   - MaxComponentsPerCircuit: the largest number of direct leaf children
//     found under any single composition node (a lone leaf root counts 1).
//   - UselessResistors: resistors reporting exactly 0 V when ReferenceVoltage
//     is applied at the settled regime. They sit in a shorted branch or behind
//     an open one and take no part in the answer.
//
// Check compares both against Limits and returns a sentinel error wrapped with
// the measured value. Accept is the boolean form. All functions are pure
// predicates over a tree and never mutate it.
//
// Run the checks on the output of simplify.Simplify: redundant same-kind
// nesting splits one electrical circuit into several nodes and would deflate
// the per-circuit count.
package quality
