package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/xvgterm/internal/xvg"
)

// Summary describes v in one line: count, mean ± population standard
// deviation, and range.
func Summary(v xvg.View) string {
	return fmt.Sprintf("Summary:  %d items,  mean ± σ  %s ± %s,  min … max  %s … %s",
		v.Len(),
		FormatFloat(v.Mean()),
		FormatFloat(v.StandardDeviation()),
		FormatFloat(v.MinValue()),
		FormatFloat(v.MaxValue()),
	)
}

// FormatFloat prints f with the fewest digits that read back to the same
// float32, without an exponent.
func FormatFloat(f float32) string {
	x := float64(f)
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return strconv.FormatFloat(x, 'f', -1, 32)
}
