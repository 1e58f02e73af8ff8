package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/xvgterm/internal/xvg"
)

// ExportData is the JSON form of a dataset.
type ExportData struct {
	Title      *string     `json:"title,omitempty"`
	Subtitle   *string     `json:"subtitle,omitempty"`
	XAxisLabel *string     `json:"xaxis_label,omitempty"`
	YAxisLabel *string     `json:"yaxis_label,omitempty"`
	Type       *string     `json:"type,omitempty"`
	Misc       []string    `json:"misc,omitempty"`
	Cols       int         `json:"cols"`
	Rows       int         `json:"rows"`
	Data       [][]float64 `json:"data"`
}

func NewExportData(ds *xvg.Dataset) ExportData {
	attrs := ds.Attributes
	return ExportData{
		Title:      optional(attrs, xvg.TitleField),
		Subtitle:   optional(attrs, xvg.SubtitleField),
		XAxisLabel: optional(attrs, xvg.XAxisLabelField),
		YAxisLabel: optional(attrs, xvg.YAxisLabelField),
		Type:       optional(attrs, xvg.TypeField),
		Misc:       attrs.Misc,
		Cols:       ds.Cols,
		Rows:       ds.Rows,
		Data:       ds.Table(),
	}
}

// optional keeps a set but empty attribute as "" in the JSON output.
func optional(attrs xvg.Attributes, f xvg.Field) *string {
	v, ok := attrs.Lookup(f)
	if !ok {
		return nil
	}
	return &v
}

// WriteJSON writes ds as indented JSON. Non finite values are not valid
// JSON and make the encoder fail.
func WriteJSON(w io.Writer, ds *xvg.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(ds))
}

// WriteCSV writes ds with a header row x0, x1, ...
func WriteCSV(w io.Writer, ds *xvg.Dataset) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, ds.Cols)
	for i := 0; i < ds.Cols; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range ds.Table() {
		record := make([]string, 0, len(row))
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 32))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
