package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// isValidTranslation checks the movement geometry of the piece on start.
// Occupancy of the destination is the caller's concern.
func isValidTranslation(pos *chess.Position, start, end chess.Square) bool {
	piece, ok := pos.PieceAt(start)
	if !ok {
		return false
	}
	dr, dc := chess.Delta(start, end)

	switch piece.Kind {
	case chess.Pawn:
		return isValidPawnTranslation(pos, piece.Side, start, end)
	case chess.Rook:
		return isRookTranslation(dr, dc)
	case chess.Knight:
		return isKnightTranslation(dr, dc)
	case chess.Bishop:
		return isBishopTranslation(dr, dc)
	case chess.Queen:
		return isRookTranslation(dr, dc) || isBishopTranslation(dr, dc)
	case chess.King:
		return isKingTranslation(dr, dc)
	}
	return false
}

// isRookTranslation: exactly one of the deltas is zero.
func isRookTranslation(dr, dc int) bool {
	return (dr == 0) != (dc == 0)
}

// isBishopTranslation: equal non-zero deltas in magnitude.
func isBishopTranslation(dr, dc int) bool {
	return abs(dr) == abs(dc) && dr != 0
}

// isKnightTranslation: the L-shape, |dr|+|dc| = 3 with both deltas non-zero.
func isKnightTranslation(dr, dc int) bool {
	return abs(dr)+abs(dc) == 3 && dr != 0 && dc != 0
}

// isKingTranslation: one step in any direction.
func isKingTranslation(dr, dc int) bool {
	return abs(dr) <= 1 && abs(dc) <= 1 && (dr != 0 || dc != 0)
}

// IsPathBlocked reports whether any square strictly between start and end
// is occupied. Only straight and diagonal lines have a path; any other
// pair of squares is never blocked. The destination itself is not examined.
func IsPathBlocked(pos *chess.Position, start, end chess.Square) bool {
	dr, dc := chess.Delta(start, end)
	if !isRookTranslation(dr, dc) && !isBishopTranslation(dr, dc) {
		return false
	}

	rowDir, colDir := sign(dr), sign(dc)
	for sq := start.Offset(rowDir, colDir); sq != end; sq = sq.Offset(rowDir, colDir) {
		if _, occupied := pos.PieceAt(sq); occupied {
			return true
		}
	}
	return false
}

// isEndBlocked reports whether the destination rules out a move: a piece
// of the mover's own side is always in the way, and a pawn never moves
// straight onto an occupied square.
func isEndBlocked(pos *chess.Position, start, end chess.Square) bool {
	mover, ok := pos.PieceAt(start)
	if !ok {
		return false
	}
	target, occupied := pos.PieceAt(end)
	if !occupied {
		return false
	}
	return target.Side == mover.Side || mover.Kind == chess.Pawn
}
