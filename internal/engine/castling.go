package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// castleSquares returns where the king and rook start and finish for a castle.
// The king starts on the centre file and the rooks in the corners.
func castleSquares(pos *chess.Position, side chess.Side, kind chess.CastleKind) (kingFrom, kingTo, rookFrom, rookTo chess.Square) {
	row := pos.HomeRow(side)
	kingCol := pos.KingHomeCol()
	kingFrom = chess.Square{Row: row, Col: kingCol}

	if kind == chess.Short {
		kingTo = chess.Square{Row: row, Col: kingCol + 2}
		rookFrom = chess.Square{Row: row, Col: pos.Size - 1}
		rookTo = chess.Square{Row: row, Col: kingCol + 1}
	} else {
		kingTo = chess.Square{Row: row, Col: kingCol - 2}
		rookFrom = chess.Square{Row: row, Col: 0}
		rookTo = chess.Square{Row: row, Col: kingCol - 1}
	}
	return kingFrom, kingTo, rookFrom, rookTo
}

// isValidCastling checks a castling action for the given side.
// The king and rook must both be unmoved on their home squares, every
// square between them must be empty, and the king may not start on, pass
// through or land on a square the opponent attacks.
func isValidCastling(pos *chess.Position, side chess.Side, action chess.Action) bool {
	kingFrom, kingTo, rookFrom, _ := castleSquares(pos, side, action.Kind.Castle)
	if action.Start != kingFrom || action.End != kingTo {
		return false
	}
	// On narrow boards the king's destination reaches the rook's corner.
	if chess.ColDistance(kingFrom, kingTo) >= chess.ColDistance(kingFrom, rookFrom) {
		return false
	}

	king, ok := pos.PieceAt(kingFrom)
	if !ok || king.Kind != chess.King || king.Side != side || king.HasMoved {
		return false
	}
	rook, ok := pos.PieceAt(rookFrom)
	if !ok || rook.Kind != chess.Rook || rook.Side != side || rook.HasMoved {
		return false
	}

	if IsPathBlocked(pos, kingFrom, rookFrom) {
		return false
	}

	step := sign(kingTo.Col - kingFrom.Col)
	for col := kingFrom.Col; ; col += step {
		if IsSquareAttacked(pos, chess.Square{Row: kingFrom.Row, Col: col}, side.Opposite()) {
			return false
		}
		if col == kingTo.Col {
			break
		}
	}
	return true
}

// applyCastle relocates the king and rook for a castle and marks both moved.
func applyCastle(pos *chess.Position, side chess.Side, kind chess.CastleKind) {
	kingFrom, kingTo, rookFrom, rookTo := castleSquares(pos, side, kind)

	king, _ := pos.PieceAt(kingFrom)
	rook, _ := pos.PieceAt(rookFrom)
	king.HasMoved = true
	rook.HasMoved = true

	pos.Clear(kingFrom)
	pos.Clear(rookFrom)
	pos.Set(kingTo, king)
	pos.Set(rookTo, rook)
}
