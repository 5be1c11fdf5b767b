// Package exercise turns an accepted network into the files handed to a
// student: a task sheet, one solution sheet per regime and a schematic image.
//
// A Sheet is computed once per regime from a single Impedance and a single
// Distribute call. Every value is rounded to three decimals unless it is
// exactly 0, infinite or NaN. Readings are listed resistors first, then
// capacitors, then inductors, each in natural ID order.
package exercise
