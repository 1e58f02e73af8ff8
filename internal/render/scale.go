package render

// Scale maps values linearly onto the cell indices [0, Size-1], with Lo
// landing in cell 0 and Hi in cell Size-1. Hi may be less than Lo, which
// flips the direction.
type Scale struct {
	Lo, Hi float32
	Size   int
}

// Cell returns the cell index for v. A zero-width range collapses every
// value onto cell 0. Results are clamped to the grid, NaN included.
func (s Scale) Cell(v float32) int {
	div := s.Hi - s.Lo
	if div == 0 {
		div = 1
	}
	c := (v - s.Lo) * float32(s.Size-1) / div
	if !(c > 0) {
		return 0
	}
	if c >= float32(s.Size-1) {
		return s.Size - 1
	}
	return int(c)
}
