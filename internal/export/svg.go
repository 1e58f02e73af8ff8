package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/xvgterm/internal/render"
	"github.com/san-kum/xvgterm/internal/xvg"
)

const (
	svgBackground = "#0a0a0a"
	svgForeground = "#00ff00"
	svgFont       = "font-family:monospace;fill:#cccccc;text-anchor:middle"
)

// SVGOptions controls the SVG density image.
type SVGOptions struct {
	// Columns and Rows size the binning grid.
	Columns, Rows int
	// Cell is the side of one grid cell in pixels.
	Cell int
	// Levels quantizes the opacity like a text palette would. Zero means
	// one level per distinct count.
	Levels int
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Columns: 120, Rows: 60, Cell: 6, Levels: 9}
}

// WriteSVG renders the density plot of ds as SVG, binned the same way as
// the text graph, with the title on top and the axis labels around the plot.
func WriteSVG(w io.Writer, ds *xvg.Dataset, opts SVGOptions) error {
	if err := render.Check(ds); err != nil {
		return err
	}
	if opts.Columns <= 0 || opts.Rows <= 0 || opts.Cell <= 0 {
		return fmt.Errorf("export: invalid svg grid %dx%d cell %d", opts.Columns, opts.Rows, opts.Cell)
	}

	grid := render.Bin(ds, opts.Columns, opts.Rows)
	lo, hi := grid.Bounds()

	attrs := ds.Attributes
	margin := 3 * opts.Cell
	header := 0
	if attrs.Title != "" {
		header += 2 * margin
	}
	plotW := opts.Columns * opts.Cell
	plotH := opts.Rows * opts.Cell
	width := plotW + 2*margin
	height := plotH + header + 2*margin

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+svgBackground)

	if attrs.Title != "" {
		canvas.Text(width/2, margin+opts.Cell, attrs.Title, svgFont+";font-size:16px")
	}

	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", margin, header+margin))
	canvas.Gstyle("fill:" + svgForeground)
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			// Stored columns are mirrored; see render.Grid.
			count := grid.At(row, grid.Width-1-col)
			if count == 0 {
				continue
			}
			canvas.Rect(col*opts.Cell, row*opts.Cell, opts.Cell, opts.Cell,
				fmt.Sprintf("fill-opacity:%.3f", opacity(count, lo, hi, opts.Levels)))
		}
	}
	canvas.Gend()
	canvas.Gend()

	if attrs.XAxisLabel != "" {
		canvas.Text(margin+plotW/2, header+plotH+margin+2*opts.Cell, attrs.XAxisLabel, svgFont+";font-size:12px")
	}
	if attrs.YAxisLabel != "" {
		x, y := margin/2, header+margin+plotH/2
		canvas.Text(x, y, attrs.YAxisLabel,
			fmt.Sprintf("%s;font-size:12px", svgFont),
			fmt.Sprintf(`transform="rotate(-90 %d %d)"`, x, y))
	}

	canvas.End()
	return nil
}

func opacity(count, lo, hi, levels int) float64 {
	if levels <= 1 {
		levels = hi - lo + 1
	}
	level := render.Level(levels, count, lo, hi)
	return float64(level+1) / float64(levels)
}
