package chess

// Square is a zero-based board coordinate. Row 0 is rank 1, the back rank of First.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// InBounds reports whether s lies on a board of the given size.
func (s Square) InBounds(size int) bool {
	return s.Row >= 0 && s.Row < size && s.Col >= 0 && s.Col < size
}

// String returns the file+rank notation of the square, e.g. "e4".
func (s Square) String() string {
	return FormatSquare(s)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Delta returns the row and column difference from s to t.
func Delta(s, t Square) (dr, dc int) {
	return t.Row - s.Row, t.Col - s.Col
}

// ColDistance returns the absolute file distance between two squares.
func ColDistance(s, t Square) int {
	return abs(t.Col - s.Col)
}
