// Package term resolves the drawing area from explicit sizes and the
// terminal attached to the process.
package term

import (
	"errors"
	"os"

	xterm "github.com/charmbracelet/x/term"
)

var ErrNoTerminal = errors.New("unable to get terminal size")

// Size is a drawing area in character cells.
type Size struct {
	Width, Height int
}

// Detector reports the current terminal size.
type Detector func() (width, height int, err error)

// Stdout detects the size of the terminal on standard output.
func Stdout() (int, int, error) {
	return xterm.GetSize(os.Stdout.Fd())
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(f.Fd())
}

// Auto marks a dimension Resolve takes from the terminal.
const Auto = -1

// Resolve fills the Auto (negative) fields of want from detect. Zero is a
// size like any other. detect is only called when a field is missing.
func Resolve(want Size, detect Detector) (Size, error) {
	if want.Width >= 0 && want.Height >= 0 {
		return want, nil
	}
	if detect == nil {
		return Size{}, ErrNoTerminal
	}
	w, h, err := detect()
	if err != nil || w <= 0 || h <= 0 {
		return Size{}, ErrNoTerminal
	}
	if want.Width < 0 {
		want.Width = w
	}
	if want.Height < 0 {
		want.Height = h
	}
	return want, nil
}

// Fits reports whether s is no smaller than least in either direction.
func (s Size) Fits(least Size) bool {
	return s.Width >= least.Width && s.Height >= least.Height
}

// Shrink removes rows from the bottom of s.
func (s Size) Shrink(rows int) Size {
	s.Height -= rows
	return s
}
