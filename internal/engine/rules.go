// Package engine provides chess move validation, move generation and the
// commit path that applies legal actions to a position.
package engine

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// checkAction runs the pseudo-legal checks in order and returns the first
// failure: an empty start square, a piece of the side not on move, then
// any geometry, path or occupancy violation.
func checkAction(pos *chess.Position, action chess.Action) error {
	piece, ok := pos.PieceAt(action.Start)
	if !ok {
		return errors.ErrStartSquareEmpty
	}
	if piece.Side != pos.Turn {
		return errors.ErrInvalidPieceColor
	}
	if !IsValidAction(pos, action) {
		return errors.ErrInvalidAction
	}
	return nil
}

// IsValidAction reports whether action is pseudo-legal for the side to move:
// it satisfies the rules of its ActionKind but may still leave the mover's
// king in check.
func IsValidAction(pos *chess.Position, action chess.Action) bool {
	start, end := action.Start, action.End
	if !pos.InBounds(start) || !pos.InBounds(end) || start == end {
		return false
	}
	mover, ok := pos.PieceAt(start)
	if !ok || mover.Side != pos.Turn {
		return false
	}
	target, occupied := pos.PieceAt(end)

	switch action.Kind.Type {
	case chess.Normal:
		if occupied {
			return false
		}
		if mover.Kind == chess.Pawn && end.Row == pos.LastRow(mover.Side) {
			return false // Reaching the last row is always a promotion
		}
		return isValidTranslation(pos, start, end) &&
			!IsPathBlocked(pos, start, end) &&
			!isEndBlocked(pos, start, end)

	case chess.Capture:
		if !occupied || target.Side == mover.Side {
			return false
		}
		if mover.Kind == chess.Pawn {
			return end.Row != pos.LastRow(mover.Side) &&
				isValidPawnCapture(pos, mover.Side, start, end)
		}
		return isValidTranslation(pos, start, end) && !IsPathBlocked(pos, start, end)

	case chess.Castling:
		return mover.Kind == chess.King && isValidCastling(pos, mover.Side, action)

	case chess.EnPassant:
		return mover.Kind == chess.Pawn && isValidEnPassant(pos, mover.Side, start, end)

	case chess.Promotion:
		return mover.Kind == chess.Pawn && isValidPromotion(pos, mover.Side, action)
	}
	return false
}
