package xvg

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// asciiSpace separates tokens. Other Unicode spaces such as U+00A0 stay
// inside a token.
const asciiSpace = " \t\n\f\r"

// ParseOptions controls how tolerant Parse is.
type ParseOptions struct {
	// Strict rejects data rows whose width differs from the first data row.
	// Without it such rows are kept and shift every later column read.
	Strict bool
}

// Parse reads xvg text from r in a single pass. Lines may be of any length.
func Parse(r io.Reader, opts ParseOptions) (*Dataset, error) {
	ds := &Dataset{}
	cols := -1

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &ParseError{Line: lineNo + 1, Wrapped: err}
		}
		if line == "" && err == io.EOF {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		switch {
		case strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, "@"):
			if err := ds.Attributes.Parse(line); err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Wrapped: err}
			}
		case strings.Trim(line, asciiSpace) == "":
		default:
			before := len(ds.Values)
			ds.Values = appendRow(ds.Values, line)
			width := len(ds.Values) - before

			if cols < 0 {
				cols = width
			} else if opts.Strict && width != cols {
				return nil, &ParseError{
					Line:    lineNo,
					Text:    line,
					Wrapped: &RowWidthError{Want: cols, Got: width},
				}
			}
			ds.Rows++
		}

		if err == io.EOF {
			break
		}
	}

	if cols > 0 {
		ds.Cols = cols
	}
	return ds, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string, opts ParseOptions) (*Dataset, error) {
	return Parse(strings.NewReader(s), opts)
}

// ReadFile parses the xvg file at path.
func ReadFile(path string, opts ParseOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, opts)
}

// appendRow appends every token of line that parses as a float32. Tokens
// that do not parse, such as a trailing residue name, are dropped.
func appendRow(dst []float32, line string) []float32 {
	for _, tok := range fields(line) {
		if hexPrefixed(tok) {
			continue
		}
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			// Out of range values still come back as ±Inf.
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
				continue
			}
		}
		dst = append(dst, float32(v))
	}
	return dst
}

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(asciiSpace, r)
	})
}

// hexPrefixed reports whether tok is written in the 0x notation that
// strconv accepts but xvg writers never emit. Underscore separators are
// only valid behind such a prefix, so this rejects them too.
func hexPrefixed(tok string) bool {
	tok = strings.TrimLeft(tok, "+-")
	return len(tok) >= 2 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X')
}
