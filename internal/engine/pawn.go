package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// isValidPawnTranslation: one square forward, or two from the pawn's home row.
func isValidPawnTranslation(pos *chess.Position, side chess.Side, start, end chess.Square) bool {
	dr, dc := chess.Delta(start, end)
	dir := side.PawnDirection()

	if dc != 0 {
		return false
	}
	if dr == dir {
		return true
	}
	return start.Row == pos.PawnHomeRow(side) && dr == 2*dir
}

// isValidPawnCapture: one square diagonally forward onto an opposing piece.
func isValidPawnCapture(pos *chess.Position, side chess.Side, start, end chess.Square) bool {
	dr, dc := chess.Delta(start, end)
	if abs(dc) != 1 || dr != side.PawnDirection() {
		return false
	}
	target, ok := pos.PieceAt(end)
	return ok && target.Side != side
}

// isValidEnPassant checks a diagonal pawn step onto an empty square that
// captures the adjacent opposing pawn. The victim must have advanced two
// squares as the immediately preceding action; any later move voids it.
func isValidEnPassant(pos *chess.Position, side chess.Side, start, end chess.Square) bool {
	dr, dc := chess.Delta(start, end)
	if abs(dc) != 1 || dr != side.PawnDirection() {
		return false
	}
	if _, occupied := pos.PieceAt(end); occupied {
		return false
	}

	victimSq := chess.Square{Row: start.Row, Col: end.Col}
	victim, ok := pos.PieceAt(victimSq)
	if !ok || victim.Kind != chess.Pawn || victim.Side == side {
		return false
	}

	last, ok := pos.Last()
	if !ok || last.Kind.Type != chess.Normal || last.End != victimSq {
		return false
	}
	doubleStepFrom := victimSq.Offset(-2*victim.Side.PawnDirection(), 0)
	return last.Start == doubleStepFrom
}

// isValidPromotion checks a pawn reaching its last row by either a forward
// step or a diagonal capture, promoting to a rook, knight, bishop or queen.
func isValidPromotion(pos *chess.Position, side chess.Side, action chess.Action) bool {
	start, end := action.Start, action.End
	if end.Row != pos.LastRow(side) {
		return false
	}
	switch action.Kind.Promote {
	case chess.Rook, chess.Knight, chess.Bishop, chess.Queen:
	default:
		return false
	}

	if isValidPawnCapture(pos, side, start, end) {
		return true
	}
	return pos.IsEmpty(end) &&
		isValidPawnTranslation(pos, side, start, end) &&
		!IsPathBlocked(pos, start, end)
}
