package analysis

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aclements/go-moremath/stats"

	"github.com/san-kum/xvgterm/internal/render"
	"github.com/san-kum/xvgterm/internal/xvg"
)

// ColumnStats describes one data column.
type ColumnStats struct {
	Column int
	Count  int
	Mean   float32
	StdDev float32
	StdErr float32
	Min    float32
	Q1     float64
	Median float64
	Q3     float64
	Max    float32
}

// Describe computes ColumnStats for every column of ds.
func Describe(ds *xvg.Dataset) []ColumnStats {
	out := make([]ColumnStats, 0, ds.Cols)
	for i := 0; i < ds.Cols; i++ {
		out = append(out, DescribeView(ds.Col(i)))
	}
	return out
}

// DescribeView computes ColumnStats for a single view.
func DescribeView(v xvg.View) ColumnStats {
	sample := stats.Sample{Xs: v.Float64s()}
	sample.Sort()

	return ColumnStats{
		Column: v.Index(),
		Count:  v.Len(),
		Mean:   v.Mean(),
		StdDev: v.StandardDeviation(),
		StdErr: v.StandardError(),
		Min:    v.MinValue(),
		Q1:     sample.Quantile(0.25),
		Median: sample.Quantile(0.5),
		Q3:     sample.Quantile(0.75),
		Max:    v.MaxValue(),
	}
}

// Write prints the attributes of ds and a table of its column statistics.
func Write(w io.Writer, ds *xvg.Dataset) error {
	for _, attr := range []struct {
		name  string
		field xvg.Field
	}{
		{"title", xvg.TitleField},
		{"subtitle", xvg.SubtitleField},
		{"x label", xvg.XAxisLabelField},
		{"y label", xvg.YAxisLabelField},
		{"type", xvg.TypeField},
	} {
		if v, ok := ds.Attributes.Lookup(attr.field); ok {
			fmt.Fprintf(w, "%s: %s\n", attr.name, v)
		}
	}
	fmt.Fprintf(w, "rows: %d\ncolumns: %d\n\n", ds.Rows, ds.Cols)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COL\tN\tMEAN\tSTDDEV\tSTDERR\tMIN\tQ1\tMEDIAN\tQ3\tMAX")
	for _, s := range Describe(ds) {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Column,
			s.Count,
			render.FormatFloat(s.Mean),
			render.FormatFloat(s.StdDev),
			render.FormatFloat(s.StdErr),
			render.FormatFloat(s.Min),
			render.FormatFloat(float32(s.Q1)),
			render.FormatFloat(float32(s.Median)),
			render.FormatFloat(float32(s.Q3)),
			render.FormatFloat(s.Max),
		)
	}
	return tw.Flush()
}
