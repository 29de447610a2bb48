// Package layout holds the geometry value types shared by the constraint
// generator, the solver and the container: floating point frames, sizes and
// edge insets, plus rounding of frames onto an integer cell grid.
//
// Types are re-exported through the root kbd package for public consumption.
package layout
