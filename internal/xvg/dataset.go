package xvg

// Dataset is the parsed content of an xvg file. Values is row-major with
// Cols values per row. It is not modified after Parse returns.
type Dataset struct {
	Attributes Attributes
	Cols       int
	Rows       int
	Values     []float32
}

// Col returns a view over column idx.
func (d *Dataset) Col(idx int) View {
	return View{data: d, axis: Column, index: idx}
}

// Row returns a view over row idx.
func (d *Dataset) Row(idx int) View {
	return View{data: d, axis: Row, index: idx}
}

// IsEmpty reports whether the dataset holds no data rows.
func (d *Dataset) IsEmpty() bool {
	return d.Rows == 0
}

// Table copies the buffer into one slice per row. Short trailing rows are
// truncated to what the buffer holds.
func (d *Dataset) Table() [][]float64 {
	table := make([][]float64, 0, d.Rows)
	for i := 0; i < d.Rows; i++ {
		table = append(table, d.Row(i).Float64s())
	}
	return table
}
