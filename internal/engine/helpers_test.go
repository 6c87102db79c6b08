package engine

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

// play commits each move in coordinate notation, inferring its kind from
// the board the way an interactive driver does.
func play(t *testing.T, pos *chess.Position, moves ...string) {
	t.Helper()
	for _, m := range moves {
		a := chess.MustParseAction(m)
		if _, err := CommitSquares(pos, a.Start, a.End); err != nil {
			t.Fatalf("CommitSquares(%s) error: %v", m, err)
		}
	}
}

// action builds an action from coordinate notation with an explicit kind.
func action(t *testing.T, move string, kind chess.ActionKind) chess.Action {
	t.Helper()
	a := chess.MustParseAction(move)
	return chess.NewAction(a.Start, a.End, kind)
}

// pieceAt returns the piece on a square given in notation.
func pieceAt(t *testing.T, pos *chess.Position, s string) chess.Piece {
	t.Helper()
	piece, _ := pos.PieceAt(testutil.MustSquare(t, s))
	return piece
}
