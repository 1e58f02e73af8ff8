package render

import "fmt"

// Style selects the shading palette.
type Style int

const (
	// Block shades with the four block elements ░▒▓█.
	Block Style = iota
	// ASCII shades with the nine characters .:-=+*#%@.
	ASCII
)

var (
	blockPalette = []rune("░▒▓█")
	asciiPalette = []rune(".:-=+*#%@")
)

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "block":
		return Block, nil
	case "ascii":
		return ASCII, nil
	}
	return Block, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// StyleNames lists the accepted style names.
func StyleNames() []string {
	return []string{"ascii", "block"}
}

func (s Style) String() string {
	if s == ASCII {
		return "ascii"
	}
	return "block"
}

// Set implements pflag.Value.
func (s *Style) Set(name string) error {
	v, err := ParseStyle(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Type implements pflag.Value.
func (s *Style) Type() string {
	return "style"
}

// Palette returns the glyphs from sparse to dense.
func (s Style) Palette() []rune {
	if s == ASCII {
		return asciiPalette
	}
	return blockPalette
}

// Glyph shades a cell holding count points, where lo and hi are the smallest
// non-zero and the largest count on the grid.
func (s Style) Glyph(count, lo, hi int) rune {
	if count <= 0 {
		return ' '
	}
	palette := s.Palette()
	return palette[Level(len(palette), count, lo, hi)]
}

// Level maps count onto a palette index in [0, n-1].
func Level(n, count, lo, hi int) int {
	idx := (n - 1) * (count - lo) / max(hi-lo, 1)
	return min(max(idx, 0), n-1)
}
