package xvg

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	// ErrMissingQuote indicates an attribute value without its closing double quote.
	ErrMissingQuote = errors.New("xvg: expected trailing double quote in attribute")

	// ErrRowWidth indicates a data row whose width differs from the first data row.
	ErrRowWidth = errors.New("xvg: data row width differs from first row")
)

// ParseError wraps an error with the input line it occurred on.
type ParseError struct {
	Line    int
	Text    string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// RowWidthError reports a data row that parsed to the wrong number of values.
type RowWidthError struct {
	Want int
	Got  int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("%v: want %d values, got %d", ErrRowWidth, e.Want, e.Got)
}

func (e *RowWidthError) Unwrap() error {
	return ErrRowWidth
}
