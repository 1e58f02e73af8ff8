package render

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/xvgterm/internal/xvg"
)

// Trace draws column of ds as a line chart against the row index. Non
// finite values leave gaps.
func Trace(ds *xvg.Dataset, column, width, height int) (string, error) {
	if ds == nil || ds.IsEmpty() {
		return "", ErrNoData
	}
	if column < 0 || column >= ds.Cols {
		return "", fmt.Errorf("render: column %d out of range [0, %d)", column, ds.Cols)
	}

	data := ds.Col(column).Float64s()
	finite := 0
	for i, v := range data {
		if math.IsInf(v, 0) {
			data[i] = math.NaN()
		} else if !math.IsNaN(v) {
			finite++
		}
	}
	if finite == 0 {
		return "", ErrNoData
	}

	caption := ds.Attributes.YAxisLabel
	if column == 0 {
		caption = ds.Attributes.XAxisLabel
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}

	graph := asciigraph.Plot(data, opts...)
	if title, ok := ds.Attributes.Lookup(xvg.TitleField); ok {
		graph = Center(Truncate(title, width), width) + "\n" + graph
	}
	return graph, nil
}
