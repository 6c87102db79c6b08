package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// applyAction performs the positional effects of an action without any
// validation. Turn and history are left to the caller.
func applyAction(pos *chess.Position, action chess.Action) {
	start, end := action.Start, action.End
	piece, ok := pos.PieceAt(start)
	if !ok {
		return
	}
	piece.HasMoved = true

	switch action.Kind.Type {
	case chess.Normal, chess.Capture:
		pos.Clear(start)
		pos.Set(end, piece)

	case chess.Castling:
		applyCastle(pos, piece.Side, action.Kind.Castle)

	case chess.EnPassant:
		pos.Clear(start)
		pos.Clear(chess.Square{Row: start.Row, Col: end.Col})
		pos.Set(end, piece)

	case chess.Promotion:
		pos.Clear(start)
		pos.Clear(end)
		promoted := chess.NewPiece(action.Kind.Promote, piece.Side)
		promoted.HasMoved = true
		pos.Set(end, promoted)
	}
}

// scratchCopy copies just enough of pos to simulate one action: the grid,
// the side to move and the last action.
func scratchCopy(pos *chess.Position) *chess.Position {
	s := &chess.Position{
		Size:       pos.Size,
		Squares:    make([]chess.Piece, len(pos.Squares)),
		Turn:       pos.Turn,
		LastAction: pos.LastAction,
	}
	copy(s.Squares, pos.Squares)
	return s
}
