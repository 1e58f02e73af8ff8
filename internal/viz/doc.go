// Package viz provides the interactive terminal viewer for xvg datasets.
//
// The viewer is a Bubble Tea program that redraws the density plot whenever
// the terminal is resized:
//
//	s     - Toggle ascii/block shading
//	q     - Quit
//
// Shared lipgloss styles for diagnostics live here too.
package viz
