package render

import "github.com/mattn/go-runewidth"

// Ellipsis marks a truncated label.
const Ellipsis = "…"

// East Asian ambiguous runes, the ellipsis among them, count as one cell.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Truncate shortens s to at most maxWidth terminal cells. A shortened label
// ends in Ellipsis, which takes one of those cells. Cuts fall on character
// boundaries, so wide characters may leave the result one cell short.
func Truncate(s string, maxWidth int) string {
	if cellWidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 0 {
		return ""
	}
	return cellWidth.Truncate(s, maxWidth, Ellipsis)
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return cellWidth.StringWidth(s)
}
