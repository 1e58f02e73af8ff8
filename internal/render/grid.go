package render

import "github.com/san-kum/xvgterm/internal/xvg"

// Grid counts how many points fall into each cell. Cells are stored
// mirrored horizontally: column 0 holds the largest x values, and Lines
// emits each row right to left to put them back on the right.
type Grid struct {
	Width, Height int
	cells         [][]int
}

// NewGrid returns an empty width x height grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([][]int, height),
	}
	for i := range g.cells {
		g.cells[i] = make([]int, width)
	}
	return g
}

// Add counts one point in cell (row, col). Positions outside the grid are
// ignored.
func (g *Grid) Add(row, col int) {
	if row < 0 || col < 0 || row >= g.Height || col >= g.Width {
		return
	}
	g.cells[row][col]++
}

// At returns the count in cell (row, col).
func (g *Grid) At(row, col int) int {
	if row < 0 || col < 0 || row >= g.Height || col >= g.Width {
		return 0
	}
	return g.cells[row][col]
}

// Total returns the number of points counted.
func (g *Grid) Total() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			n += c
		}
	}
	return n
}

// Bounds returns the smallest non-zero and the largest count. An empty grid
// returns hi for both, which renders every cell blank.
func (g *Grid) Bounds() (lo, hi int) {
	lo = -1
	for _, row := range g.cells {
		for _, c := range row {
			if c > hi {
				hi = c
			}
			if c > 0 && (lo < 0 || c < lo) {
				lo = c
			}
		}
	}
	if lo < 0 {
		lo = hi
	}
	return lo, hi
}

// Lines shades the grid, one string per row, each emitted right to left.
func (g *Grid) Lines(style Style) []string {
	lo, hi := g.Bounds()
	lines := make([]string, 0, g.Height)
	for _, row := range g.cells {
		line := make([]rune, 0, len(row))
		for i := len(row) - 1; i >= 0; i-- {
			line = append(line, style.Glyph(row[i], lo, hi))
		}
		lines = append(lines, string(line))
	}
	return lines
}

// Bin counts the (x, y) pairs of the first two columns of ds on a width x
// height grid. Pairing stops at the shorter column.
func Bin(ds *xvg.Dataset, width, height int) *Grid {
	xs, ys := ds.Col(0), ds.Col(1)

	// Both scales run from max to min: the largest x lands in column 0,
	// which Lines draws last, and the largest y lands in the top row.
	toScreenX := Scale{Lo: xs.MaxValue(), Hi: xs.MinValue(), Size: width}
	toScreenY := Scale{Lo: ys.MaxValue(), Hi: ys.MinValue(), Size: height}

	g := NewGrid(width, height)
	for {
		x, ok := xs.Next()
		if !ok {
			break
		}
		y, ok := ys.Next()
		if !ok {
			break
		}
		g.Add(toScreenY.Cell(y), toScreenX.Cell(x))
	}
	return g
}
