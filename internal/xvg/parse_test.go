package xvg

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

const demoXVG = `# test
@ title "Demo"
@ TYPE xy
1.0 2.0
3.0 4.0
`

func TestParse_Demo(t *testing.T) {
	ds, err := ParseString(demoXVG, ParseOptions{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if ds.Cols != 2 {
		t.Errorf("expected 2 cols, got %d", ds.Cols)
	}
	if ds.Rows != 2 {
		t.Errorf("expected 2 rows, got %d", ds.Rows)
	}
	if want := []float32{1, 2, 3, 4}; !reflect.DeepEqual(ds.Values, want) {
		t.Errorf("values = %v, want %v", ds.Values, want)
	}
	if ds.Attributes.Title != "Demo" {
		t.Errorf("expected title Demo, got %q", ds.Attributes.Title)
	}
	if ds.Attributes.Type != "xy" {
		t.Errorf("expected type xy, got %q", ds.Attributes.Type)
	}
}

func TestParse_TrailingLabelDropped(t *testing.T) {
	ds, err := ParseString("1.0 2.0 RESIDUE_A\n", ParseOptions{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if want := []float32{1, 2}; !reflect.DeepEqual(ds.Values, want) {
		t.Errorf("values = %v, want %v", ds.Values, want)
	}
	if ds.Cols != 2 {
		t.Errorf("expected 2 cols, got %d", ds.Cols)
	}
}

func TestParse_Shape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cols int
		rows int
	}{
		{"empty", "", 0, 0},
		{"comments only", "# a\n# b\n", 0, 0},
		{"attributes only", "@ TYPE xy\n", 0, 0},
		{"single column", "1\n2\n3\n", 1, 3},
		{"three columns", "1 2 3\n4 5 6\n", 3, 2},
		{"blank lines skipped", "1 2\n\n   \n3 4\n\n", 2, 2},
		{"crlf", "1 2\r\n3 4\r\n", 2, 2},
		{"tabs", "1\t2\n3\t\t4\n", 2, 2},
		{"no final newline", "1 2\n3 4", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ParseString(tt.in, ParseOptions{})
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if ds.Cols != tt.cols || ds.Rows != tt.rows {
				t.Errorf("shape = %dx%d, want %dx%d", ds.Cols, ds.Rows, tt.cols, tt.rows)
			}
			if len(ds.Values) != tt.cols*tt.rows {
				t.Errorf("expected %d values, got %d", tt.cols*tt.rows, len(ds.Values))
			}
		})
	}
}

func TestParse_MissingQuoteIsFatal(t *testing.T) {
	in := "1 2\n@ title \"broken\n3 4\n"
	ds, err := ParseString(in, ParseOptions{})
	if ds != nil {
		t.Error("expected nil dataset on fatal error")
	}
	if !errors.Is(err, ErrMissingQuote) {
		t.Fatalf("expected ErrMissingQuote, got %v", err)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Line != 2 {
		t.Errorf("expected line 2, got %d", perr.Line)
	}
}

func TestParse_IrregularRows(t *testing.T) {
	in := "1 2\n3\n4 5\n"

	ds, err := ParseString(in, ParseOptions{})
	if err != nil {
		t.Fatalf("permissive parse failed: %v", err)
	}
	if ds.Rows != 3 || ds.Cols != 2 {
		t.Errorf("shape = %dx%d, want 2x3", ds.Cols, ds.Rows)
	}
	if len(ds.Values) != 5 {
		t.Errorf("expected 5 values, got %d", len(ds.Values))
	}

	_, err = ParseString(in, ParseOptions{Strict: true})
	if !errors.Is(err, ErrRowWidth) {
		t.Fatalf("expected ErrRowWidth, got %v", err)
	}
	var werr *RowWidthError
	if !errors.As(err, &werr) {
		t.Fatalf("expected *RowWidthError, got %T", err)
	}
	if werr.Want != 2 || werr.Got != 1 {
		t.Errorf("RowWidthError = %+v, want {Want:2 Got:1}", werr)
	}
}

func TestParse_Numbers(t *testing.T) {
	ds, err := ParseString("-1.5e2 +3 .25 1e50 abc 7\n", ParseOptions{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(ds.Values) != 5 {
		t.Fatalf("expected 5 values, got %v", ds.Values)
	}
	if ds.Values[0] != -150 || ds.Values[1] != 3 || ds.Values[2] != 0.25 || ds.Values[4] != 7 {
		t.Errorf("unexpected values %v", ds.Values)
	}
	if !math.IsInf(float64(ds.Values[3]), 1) {
		t.Errorf("expected +Inf for out of range value, got %v", ds.Values[3])
	}
}

func TestParse_RejectedTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []float32
	}{
		{"hex float", "1 0x1p4 2\n", []float32{1, 2}},
		{"signed hex", "1 -0X10 2\n", []float32{1, 2}},
		{"underscore", "1 1_000 2\n", []float32{1, 2}},
		{"non breaking space", "1\u00a02 3\n", []float32{3}},
		{"vertical tab", "1\v2 3\n", []float32{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ParseString(tt.in, ParseOptions{})
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if !reflect.DeepEqual(ds.Values, tt.want) {
				t.Errorf("values = %v, want %v", ds.Values, tt.want)
			}
			if ds.Cols != len(ds.Values) {
				t.Errorf("cols = %d, want %d", ds.Cols, len(ds.Values))
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rmsd.xvg")
	if err := os.WriteFile(path, []byte(demoXVG), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := ReadFile(path, ParseOptions{})
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if ds.Rows != 2 {
		t.Errorf("expected 2 rows, got %d", ds.Rows)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.xvg"), ParseOptions{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParse_LongLine(t *testing.T) {
	row := strings.Repeat("1 ", 100000) + "\n"
	ds, err := ParseString(row, ParseOptions{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ds.Cols != 100000 {
		t.Errorf("expected 100000 cols, got %d", ds.Cols)
	}
}

func TestParse_HugeLine(t *testing.T) {
	// One token longer than any fixed scanner buffer.
	row := "0 1 " + strings.Repeat("x", 17<<20) + "\n2 3\n"
	ds, err := ParseString(row, ParseOptions{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ds.Cols != 2 || ds.Rows != 2 {
		t.Errorf("shape = %dx%d, want 2x2", ds.Cols, ds.Rows)
	}
}

func TestParse_ReadError(t *testing.T) {
	boom := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("1 2\n3 4\n"), iotest.ErrReader(boom))

	_, err := Parse(r, ParseOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Line != 3 {
		t.Errorf("expected *ParseError on line 3, got %v", err)
	}
}

func TestDataset_Table(t *testing.T) {
	ds, _ := ParseString("1 2\n3 4\n5 6\n", ParseOptions{})
	want := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	if got := ds.Table(); !reflect.DeepEqual(got, want) {
		t.Errorf("Table() = %v, want %v", got, want)
	}
}
