package xvg

import (
	"iter"
	"math"
)

// Axis selects what a View walks over.
type Axis int

const (
	// Column views step through the rows of one column.
	Column Axis = iota
	// Row views step through the columns of one row.
	Row
)

// View is a strided cursor over a Dataset buffer. It holds a reference to the
// Dataset and must not be used after the Dataset is discarded. Copying a View
// copies its cursor; to restart, ask the Dataset for a new one.
type View struct {
	data  *Dataset
	axis  Axis
	index int
	step  int
}

// Index returns the column or row index of the view.
func (v View) Index() int { return v.index }

// Len returns the number of values the view spans.
func (v View) Len() int {
	if v.data == nil {
		return 0
	}
	if v.axis == Row {
		return v.data.Cols
	}
	return v.data.Rows
}

// IsEmpty reports whether Len is zero.
func (v View) IsEmpty() bool {
	return v.Len() == 0
}

// Next returns the value under the cursor and advances it. It reports false
// once Len values were produced or the position falls outside the buffer,
// which happens when earlier rows were short.
func (v *View) Next() (float32, bool) {
	if v.step >= v.Len() {
		return 0, false
	}

	var pos int
	if v.axis == Row {
		pos = v.data.Cols*v.index + v.step
	} else {
		pos = v.data.Cols*v.step + v.index
	}
	if pos < 0 || pos >= len(v.data.Values) {
		return 0, false
	}

	v.step++
	return v.data.Values[pos], true
}

// All yields the remaining values without moving v.
func (v View) All() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		c := v
		for {
			x, ok := c.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

func (v View) sum() float32 {
	var s float32
	for x := range v.All() {
		s += x
	}
	return s
}

// Mean returns the arithmetic mean. It is NaN for an empty view.
func (v View) Mean() float32 {
	return v.sum() / float32(v.Len())
}

// Variance returns the population variance (divisor Len).
func (v View) Variance() float32 {
	mean := v.Mean()
	var s float32
	for x := range v.All() {
		d := x - mean
		s += d * d
	}
	return s / float32(v.Len())
}

// StandardDeviation returns the population standard deviation.
func (v View) StandardDeviation() float32 {
	return float32(math.Sqrt(float64(v.Variance())))
}

// StandardError estimates the standard error of the mean.
func (v View) StandardError() float32 {
	return v.StandardDeviation() / float32(math.Sqrt(float64(v.Len())))
}

// MaxValue returns the largest value, or -Inf for an empty view.
func (v View) MaxValue() float32 {
	hi := float32(math.Inf(-1))
	for x := range v.All() {
		if x > hi {
			hi = x
		}
	}
	return hi
}

// MinValue returns the smallest value, or +Inf for an empty view.
func (v View) MinValue() float32 {
	lo := float32(math.Inf(1))
	for x := range v.All() {
		if x < lo {
			lo = x
		}
	}
	return lo
}

// Float64s copies the remaining values into a new slice.
func (v View) Float64s() []float64 {
	out := make([]float64, 0, v.Len())
	for x := range v.All() {
		out = append(out, float64(x))
	}
	return out
}
