package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/xvgterm/internal/xvg"
)

const (
	// gutterWidth is the y label character plus a space.
	gutterWidth = 2
	// headerRows covers the title, subtitle and x label lines.
	headerRows = 3
)

// Check reports whether ds has something Graph can draw.
func Check(ds *xvg.Dataset) error {
	if ds == nil || ds.IsEmpty() {
		return ErrNoData
	}
	if ds.Cols < 2 {
		return ErrTooFewColumns
	}
	return nil
}

// Graph renders a density plot of column 1 against column 0 of ds into a
// width x height block of text. Each returned line ends in a newline.
func Graph(ds *xvg.Dataset, style Style, width, height int) (string, error) {
	if width <= gutterWidth || height <= headerRows {
		return "", ErrTooSmall
	}
	if err := Check(ds); err != nil {
		return "", err
	}

	graphWidth := width - gutterWidth
	graphHeight := height - headerRows

	grid := Bin(ds, graphWidth, graphHeight)
	return Compose(ds.Attributes, grid.Lines(style), width, graphWidth), nil
}

// Compose lays out the shaded rows with the title, subtitle, y label gutter
// and x label. Attributes that were never set are left out; a set but empty
// one still takes its line.
func Compose(attrs xvg.Attributes, rows []string, width, graphWidth int) string {
	var b strings.Builder
	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	if attrs.Has(xvg.TitleField) {
		writeLine(Center(Truncate(attrs.Title, width), width))
	}
	if attrs.Has(xvg.SubtitleField) {
		writeLine(Center(Truncate(attrs.Subtitle, width), width))
	}

	graphHeight := len(rows)
	ylabel := []rune(Center(Truncate(attrs.YAxisLabel, graphHeight), graphHeight))
	for i, row := range rows {
		ch := ' '
		if i < len(ylabel) {
			ch = ylabel[i]
		}
		writeLine(string(ch) + " " + row)
	}

	if attrs.Has(xvg.XAxisLabelField) {
		writeLine(Center(Truncate(attrs.XAxisLabel, graphWidth), graphWidth))
	}
	return b.String()
}

// Center pads s with spaces to width cells; an odd remainder goes right.
func Center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
