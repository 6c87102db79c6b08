package testutil

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Layouts shared across package tests.
const (
	// KiwipeteLayout exercises castling, pins and captures in one position.
	KiwipeteLayout = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R"

	// EndgameLayout is a sparse rook-and-pawn ending with en passant chances.
	EndgameLayout = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8"

	// MateInOneLayout: First mates with the rook on a8.
	MateInOneLayout = "6k1/5ppp/8/8/8/8/8/R5K1"

	// BackRankMateLayout: Second to move mates with the rook on a1.
	BackRankMateLayout = "r5k1/8/8/8/8/8/5PPP/6K1 b"

	// StalemateLayout: Second to move has no legal move and is not in check.
	StalemateLayout = "7k/5Q2/6K1/8/8/8/8/8 b"

	// MiddlegameLayout is a quiet, balanced position with both sides castled.
	MiddlegameLayout = "r4rk1/ppp2ppp/2n5/3q4/3P4/2P5/PP3PPP/R2Q1RK1"
)

// MustPosition builds a standard-size position from a layout, failing the
// test on a bad layout.
func MustPosition(t testing.TB, layout string) *chess.Position {
	t.Helper()
	pos := chess.NewPosition(chess.StandardSize)
	if err := pos.PlaceLayout(layout); err != nil {
		t.Fatalf("PlaceLayout(%q) error: %v", layout, err)
	}
	return pos
}

// MustSquare decodes square notation, failing the test on error.
func MustSquare(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return sq
}
