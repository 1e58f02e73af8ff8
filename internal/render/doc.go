// Package render draws xvg datasets as text.
//
// The main entry point is [Graph], which bins the first two columns of a
// dataset into a character grid and shades each cell by how many points
// fell into it:
//
//	out, err := render.Graph(ds, render.Block, 80, 24)
//
// Building blocks:
//
//   - [Scale]: linear map from a value range onto cell indices
//   - [Grid]: occupancy counters, filled by [Bin]
//   - [Style]: the two shading palettes
//   - [Truncate]: fixed width label shortening
//   - [Summary]: one line description of a column
//   - [Trace]: line chart of one column against the row index
package render
