// Package layout holds the data model of the flexbox engine: style
// enumerations, the [Value] and [Edges] types, the [Style] a caller sets on
// a node and the [Result] the engine computes for it.
//
// Sizes are float64 points. [Undefined] (a NaN) marks a size that is not
// set or cannot be resolved and is never the same as zero.
//
// Types are re-exported through pkg/layout for public consumption.
package layout
