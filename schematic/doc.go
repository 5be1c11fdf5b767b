// Package schematic draws a topology as a simple box-and-wire diagram.
//
// Layout is computed recursively in pixel coordinates with the origin at the
// top left, children first, the same way impedance is aggregated:
//
//   - Component: a stub of LineLength, a ComponentWidth × ComponentHeight box
//     and the ID label inside it.
//   - Series: children stacked top to bottom.
//   - Parallel: a stub, children side by side separated by Gap, a top rail,
//     legs down to a common bottom and a bottom rail.
//
// Every step reports an Extent: the largest x and y it touched and the x of
// its bottom connection. DrawFrame adds the voltage source and the wires that
// close the loop. Painters are pluggable; RenderPNG paints on a gonum/plot
// vgimg canvas sized from a first measuring pass.
package schematic
