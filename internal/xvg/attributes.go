package xvg

import "strings"

// Field names one of the single-valued attributes.
type Field uint8

const (
	TitleField Field = 1 << iota
	SubtitleField
	XAxisLabelField
	YAxisLabelField
	TypeField
)

// Attributes holds the named metadata of an xvg file. A field that was never
// set reads as the empty string; Has tells it apart from an empty value such
// as `@ title ""`.
type Attributes struct {
	Title      string
	Subtitle   string
	XAxisLabel string
	YAxisLabel string
	Type       string

	// Misc keeps attribute lines that are unknown or irrelevant here, with the
	// '@' marker removed, in file order.
	Misc []string

	set Field
}

// Has reports whether every field in f was set by an attribute line.
func (a Attributes) Has(f Field) bool {
	return f != 0 && a.set&f == f
}

// Lookup returns the value of a single field and whether it was set.
func (a Attributes) Lookup(f Field) (string, bool) {
	var v string
	switch f {
	case TitleField:
		v = a.Title
	case SubtitleField:
		v = a.Subtitle
	case XAxisLabelField:
		v = a.XAxisLabel
	case YAxisLabelField:
		v = a.YAxisLabel
	case TypeField:
		v = a.Type
	default:
		return "", false
	}
	return v, a.Has(f)
}

// Parse applies a single attribute line (starting with '@') to a. A later
// line for the same key overwrites an earlier one.
//
// The line goes through two independent classifications:
//
//  1. Quoted form, `key... "value"`. The first key token selects title,
//     subtitle, xaxis label or yaxis label. Any other first token archives
//     the line in Misc. A value that opens a quote without closing it
//     returns ErrMissingQuote.
//  2. Bare form, `TYPE value`. Anything that is not exactly two tokens with
//     TYPE first is archived in Misc.
//
// Both always run, so a recognized quoted line such as `title "x"` is also
// archived by the second step. Consumers of Misc rely on seeing it there.
func (a *Attributes) Parse(line string) error {
	line = strings.TrimSpace(strings.TrimPrefix(line, "@"))

	if key, value, ok := strings.Cut(line, `"`); ok {
		value, ok = strings.CutSuffix(value, `"`)
		if !ok {
			return ErrMissingQuote
		}
		keys := fields(key)
		switch token(keys, 0) {
		case "xaxis":
			if token(keys, 1) == "label" {
				a.XAxisLabel = value
				a.set |= XAxisLabelField
			}
		case "yaxis":
			if token(keys, 1) == "label" {
				a.YAxisLabel = value
				a.set |= YAxisLabelField
			}
		case "title":
			a.Title = value
			a.set |= TitleField
		case "subtitle":
			a.Subtitle = value
			a.set |= SubtitleField
		default:
			a.Misc = append(a.Misc, line)
		}
	}

	tokens := fields(line)
	if len(tokens) == 2 && tokens[0] == "TYPE" {
		a.Type = tokens[1]
		a.set |= TypeField
		return nil
	}
	a.Misc = append(a.Misc, line)
	return nil
}

func token(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
