// Package analysis summarizes the columns of an xvg dataset.
//
//   - [Describe]: per-column count, moments, range and quartiles
//   - [Write]: tab aligned table of the results
//
// Moments come from the float32 [xvg.View] reductions so they agree with the
// one line summary printed under a graph. Quartiles use interpolation method
// R8 of Hyndman and Fan via go-moremath.
package analysis
