package render

import "errors"

var (
	// ErrTooSmall indicates a drawing area too small for the gutters.
	ErrTooSmall = errors.New("render: size is too small to present a meaningful graph")

	// ErrNoData indicates a dataset without data rows.
	ErrNoData = errors.New("render: no data to plot")

	// ErrTooFewColumns indicates a dataset without both an x and a y column.
	ErrTooFewColumns = errors.New("render: need at least two data columns")

	// ErrUnknownStyle indicates an unrecognized drawing style name.
	ErrUnknownStyle = errors.New("render: unknown drawing style")
)
