package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given side's king is attacked.
// A side without a king is never in check.
func IsInCheck(pos *chess.Position, side chess.Side) bool {
	kingSq, ok := pos.SquareOf(chess.King, side)
	if !ok {
		return false
	}
	return IsSquareAttacked(pos, kingSq, side.Opposite())
}

// IsSquareAttacked returns true if any piece of bySide could capture on sq.
// The square may be empty; pawns attack it diagonally regardless.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, bySide chess.Side) bool {
	is := func(s chess.Square, kinds ...chess.PieceKind) bool {
		piece, ok := pos.PieceAt(s)
		if !ok || piece.Side != bySide {
			return false
		}
		for _, k := range kinds {
			if piece.Kind == k {
				return true
			}
		}
		return false
	}

	// Pawns of bySide attack from one row behind, relative to their direction.
	pawnRow := -bySide.PawnDirection()
	if is(sq.Offset(pawnRow, -1), chess.Pawn) || is(sq.Offset(pawnRow, 1), chess.Pawn) {
		return true
	}

	for _, o := range knightOffsets {
		if is(sq.Offset(o[0], o[1]), chess.Knight) {
			return true
		}
	}

	for _, o := range kingOffsets {
		if is(sq.Offset(o[0], o[1]), chess.King) {
			return true
		}
	}

	if isRayAttacked(pos, sq, diagonalDirs, is, chess.Bishop, chess.Queen) {
		return true
	}
	return isRayAttacked(pos, sq, straightDirs, is, chess.Rook, chess.Queen)
}

// isRayAttacked walks each direction from sq to the first occupied square
// and checks whether it holds one of the given sliding kinds.
func isRayAttacked(pos *chess.Position, sq chess.Square, dirs [][2]int,
	is func(chess.Square, ...chess.PieceKind) bool, kinds ...chess.PieceKind) bool {
	for _, dir := range dirs {
		s := sq.Offset(dir[0], dir[1])
		for pos.InBounds(s) {
			if _, occupied := pos.PieceAt(s); occupied {
				if is(s, kinds...) {
					return true
				}
				break // Blocked
			}
			s = s.Offset(dir[0], dir[1])
		}
	}
	return false
}
