package engine

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// ActionFromSquares infers the kind of the action from start to end using
// only the board: a king moving more than one file castles, a pawn reaching
// its last row promotes to a queen, a pawn stepping diagonally onto an empty
// square beside an opposing pawn captures en passant, a move onto an
// opposing piece captures, and anything else is Normal.
func ActionFromSquares(pos *chess.Position, start, end chess.Square) chess.Action {
	kind := chess.NormalKind()

	piece, ok := pos.PieceAt(start)
	if !ok {
		return chess.NewAction(start, end, kind)
	}
	target, occupied := pos.PieceAt(end)

	switch {
	case piece.Kind == chess.King && chess.ColDistance(start, end) > 1:
		if end.Col > start.Col {
			kind = chess.CastlingKind(chess.Short)
		} else {
			kind = chess.CastlingKind(chess.Long)
		}

	case piece.Kind == chess.Pawn:
		neighbour, beside := pos.PieceAt(chess.Square{Row: start.Row, Col: end.Col})
		switch {
		case end.Row == pos.LastRow(piece.Side):
			kind = chess.PromotionKind(chess.Queen)
		case occupied:
			kind = chess.CaptureKind()
		case beside && neighbour.Kind == chess.Pawn && neighbour.Side != piece.Side &&
			chess.ColDistance(start, end) == 1:
			kind = chess.EnPassantKind()
		}

	case occupied && target.Side != piece.Side:
		kind = chess.CaptureKind()
	}

	return chess.NewAction(start, end, kind)
}

// Validate reports why action could not be committed, or nil if it is
// legal. The king-safety check simulates the action on a scratch copy;
// pos itself is never modified.
func Validate(pos *chess.Position, action chess.Action) error {
	if err := checkAction(pos, action); err != nil {
		return err
	}

	scratch := scratchCopy(pos)
	applyAction(scratch, action)
	if IsInCheck(scratch, pos.Turn) {
		return errors.ErrRemainsInCheck
	}
	return nil
}

// IsLegal reports whether action may be committed.
func IsLegal(pos *chess.Position, action chess.Action) bool {
	return Validate(pos, action) == nil
}

// CommitMove validates and applies action. On success the side to move
// flips, the previous last action joins the record, action becomes the
// last action and any selection is cleared. On failure pos is unchanged
// and the returned *errors.MoveError wraps the first rule the action broke.
func CommitMove(pos *chess.Position, action chess.Action) error {
	if err := Validate(pos, action); err != nil {
		return &errors.MoveError{
			Err:  err,
			Ply:  pos.Plies() + 1,
			Move: action.String(),
			Side: pos.Turn.String(),
		}
	}

	applyAction(pos, action)
	if pos.LastAction != nil {
		pos.Record = append(pos.Record, *pos.LastAction)
	}
	committed := action
	pos.LastAction = &committed
	pos.Turn = pos.Turn.Opposite()
	pos.Selected = nil
	return nil
}

// CommitSquares infers the action from start to end and commits it.
// This is the path an interactive driver takes for a pair of clicks.
func CommitSquares(pos *chess.Position, start, end chess.Square) (chess.Action, error) {
	action := ActionFromSquares(pos, start, end)
	return action, CommitMove(pos, action)
}
