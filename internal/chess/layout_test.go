package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

func TestPlaceLayout(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		wantErr  bool
		wantTurn Side
	}{
		{"standard", StandardLayout, false, First},
		{"side to move second", "4k3/8/8/8/8/8/8/4K3 b", false, Second},
		{"full FEN tail ignored", "4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1", false, First},
		{"empty", "", true, First},
		{"bad letter", "4x3/8/8/8/8/8/8/4K3", true, First},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 z", true, First},
		{"too many files", "9k/8/8/8/8/8/8/4K3", true, First},
		{"too many ranks", "k7/8/8/8/8/8/8/8/K7", true, First},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPosition(StandardSize)
			err := p.PlaceLayout(tt.layout)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidLayout) {
					t.Fatalf("PlaceLayout(%q) error = %v; want ErrInvalidLayout", tt.layout, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("PlaceLayout(%q) error: %v", tt.layout, err)
			}
			if p.Turn != tt.wantTurn {
				t.Errorf("Turn = %v; want %v", p.Turn, tt.wantTurn)
			}
		})
	}
}

func TestPlaceLayout_ClearsGrid(t *testing.T) {
	p := NewStandardPosition()
	p.MustPlaceLayout("4k3/8/8/8/8/8/8/4K3")

	if got := len(p.Occupied(First)) + len(p.Occupied(Second)); got != 2 {
		t.Errorf("pieces after relayout = %d; want 2", got)
	}
}

func TestPlaceLayout_PiecesUnmoved(t *testing.T) {
	p := NewStandardPosition()
	for _, piece := range p.Squares {
		if piece.HasMoved {
			t.Fatalf("piece %+v marked as moved after layout", piece)
		}
	}
}

func TestMustPlaceLayout_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPlaceLayout(bad) did not panic")
		}
	}()
	NewPosition(StandardSize).MustPlaceLayout("rnbqkbnr/ppppXppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
}

func TestLayout_RoundTrip(t *testing.T) {
	layouts := []string{
		StandardLayout,
		"4k3/8/8/8/8/8/8/4K3",
		"r3k2r/pppq1ppp/2npbn2/4p3/2B1P3/2NP1N2/PPPQ1PPP/R3K2R",
		"8/8/8/3pP3/8/8/8/k6K",
	}
	for _, layout := range layouts {
		p := NewPosition(StandardSize)
		p.MustPlaceLayout(layout)
		if got := p.Layout(); got != layout {
			t.Errorf("Layout() = %q; want %q", got, layout)
		}
	}
}

func TestFEN(t *testing.T) {
	p := NewPosition(StandardSize)
	p.MustPlaceLayout("4k3/8/8/8/8/8/8/4K3 b")
	if got, want := p.FEN(), "4k3/8/8/8/8/8/8/4K3 b"; got != want {
		t.Errorf("FEN() = %q; want %q", got, want)
	}
}

func TestPlaceLayout_SmallBoard(t *testing.T) {
	p := NewPosition(5)
	if err := p.PlaceLayout("rnbqk/ppppp/5/PPPPP/RNBQK"); err != nil {
		t.Fatalf("PlaceLayout on 5x5 error: %v", err)
	}
	piece, ok := p.PieceAt(Sq(0, 4))
	if !ok || piece.Kind != King || piece.Side != First {
		t.Errorf("PieceAt(0,4) = %+v, %v; want First King", piece, ok)
	}
	if got := p.Layout(); got != "rnbqk/ppppp/5/PPPPP/RNBQK" {
		t.Errorf("Layout() = %q", got)
	}
}

// TestLargestBoard_RoundTrip covers the largest board a game can use: its
// FEN reads back unchanged and every square survives notation.
func TestLargestBoard_RoundTrip(t *testing.T) {
	layout := "k7/1p6/2p5/3p4/4P3/5P2/6P1/7K"
	p := NewPosition(StandardSize)
	p.MustPlaceLayout(layout)

	reparsed := NewPosition(StandardSize)
	if err := reparsed.PlaceLayout(p.FEN()); err != nil {
		t.Fatalf("PlaceLayout(FEN()) error: %v", err)
	}
	if got := reparsed.Layout(); got != layout {
		t.Errorf("Layout() after reparse = %q; want %q", got, layout)
	}

	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			sq := Sq(row, col)
			got, err := ParseSquare(FormatSquare(sq))
			if err != nil || got != sq {
				t.Errorf("ParseSquare(FormatSquare(%+v)) = %+v, %v; want %+v", sq, got, err, sq)
			}
		}
	}
}
