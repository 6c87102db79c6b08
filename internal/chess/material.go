package chess

// pieceWorth holds piece values in hundredths of a pawn. Summing integers
// keeps equal material bit-identical however the pieces are arranged.
// The king carries a value only so it is never a zero-weighted term.
var pieceWorth = [...]int{
	NoPiece: 0,
	Pawn:    100,
	Knight:  345,
	Bishop:  355,
	Rook:    525,
	Queen:   1000,
	King:    400,
}

// Worth returns the value of a piece kind in pawns.
func Worth(kind PieceKind) float64 {
	return float64(pieceWorth[kind]) / 100
}

// Material returns the total value of one side's pieces.
func (p *Position) Material(side Side) float64 {
	return float64(p.material(side)) / 100
}

func (p *Position) material(side Side) int {
	total := 0
	for _, piece := range p.Squares {
		if !piece.IsEmpty() && piece.Side == side {
			total += pieceWorth[piece.Kind]
		}
	}
	return total
}

// MaterialBalance returns First's material minus Second's.
func (p *Position) MaterialBalance() float64 {
	return float64(p.material(First)-p.material(Second)) / 100
}
