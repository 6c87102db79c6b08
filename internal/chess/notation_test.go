package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a1", Sq(0, 0)},
		{"h1", Sq(0, 7)},
		{"a8", Sq(7, 0)},
		{"e4", Sq(3, 4)},
		{"E4", Sq(3, 4)},
		{" d5 ", Sq(4, 3)},
	}
	for _, tt := range tests {
		got, err := ParseSquare(tt.in)
		if err != nil {
			t.Errorf("ParseSquare(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSquare_Errors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"", chesserrors.ErrInvalidLocationStringLength},
		{"e", chesserrors.ErrInvalidLocationStringLength},
		{"e44", chesserrors.ErrInvalidLocationStringLength},
		{"i4", chesserrors.ErrInvalidLocationString},
		{"e9", chesserrors.ErrInvalidLocationString},
		{"e0", chesserrors.ErrInvalidLocationString},
		{"44", chesserrors.ErrInvalidLocationString},
		{"ee", chesserrors.ErrInvalidLocationString},
		{"4e", chesserrors.ErrInvalidLocationString},
	}
	for _, tt := range tests {
		_, err := ParseSquare(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseSquare(%q) error = %v; want %v", tt.in, err, tt.wantErr)
		}
	}
}

// TestSquareNotation_RoundTrip checks every valid square string decodes and
// re-encodes to itself.
func TestSquareNotation_RoundTrip(t *testing.T) {
	for file := byte('a'); file <= 'h'; file++ {
		for rank := byte('1'); rank <= '8'; rank++ {
			s := string([]byte{file, rank})
			sq, err := ParseSquare(s)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", s, err)
			}
			if got := FormatSquare(sq); got != s {
				t.Errorf("FormatSquare(ParseSquare(%q)) = %q", s, got)
			}
			if got := sq.String(); got != s {
				t.Errorf("ParseSquare(%q).String() = %q", s, got)
			}
		}
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("e2e4")
	if err != nil {
		t.Fatalf("ParseAction(e2e4) error: %v", err)
	}
	want := NewAction(Sq(1, 4), Sq(3, 4), NormalKind())
	if a != want {
		t.Errorf("ParseAction(e2e4) = %+v; want %+v", a, want)
	}
	if got := a.String(); got != "e2e4" {
		t.Errorf("String() = %q; want e2e4", got)
	}
}

func TestParseAction_Errors(t *testing.T) {
	tests := []struct {
		in       string
		wantErrs []error
	}{
		{"e2e", []error{chesserrors.ErrInvalidMoveString}},
		{"e2e4e5", []error{chesserrors.ErrInvalidMoveString}},
		{"z2e4", []error{chesserrors.ErrInvalidMoveString, chesserrors.ErrInvalidLocationString}},
		{"e2e9", []error{chesserrors.ErrInvalidMoveString, chesserrors.ErrInvalidLocationString}},
	}
	for _, tt := range tests {
		_, err := ParseAction(tt.in)
		for _, want := range tt.wantErrs {
			if !errors.Is(err, want) {
				t.Errorf("ParseAction(%q) error = %v; want %v in chain", tt.in, err, want)
			}
		}
	}
}

func TestMustParseAction_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseAction(bad) did not panic")
		}
	}()
	MustParseAction("e2")
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{NewAction(Sq(6, 0), Sq(7, 0), PromotionKind(Queen)), "a7a8q"},
		{NewAction(Sq(1, 7), Sq(0, 7), PromotionKind(Knight)), "h2h1n"},
		{NewAction(Sq(0, 4), Sq(0, 6), CastlingKind(Short)), "e1g1"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("%+v.String() = %q; want %q", tt.action, got, tt.want)
		}
	}
}

func TestActionKind_String(t *testing.T) {
	tests := []struct {
		kind ActionKind
		want string
	}{
		{NormalKind(), "Normal"},
		{CaptureKind(), "Capture"},
		{EnPassantKind(), "EnPassant"},
		{CastlingKind(Long), "Castling(Long)"},
		{PromotionKind(Rook), "Promotion(Rook)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestPiece_Letter(t *testing.T) {
	if got := NewPiece(Knight, First).Letter(); got != 'N' {
		t.Errorf("First knight letter = %c; want N", got)
	}
	if got := NewPiece(Knight, Second).Letter(); got != 'n' {
		t.Errorf("Second knight letter = %c; want n", got)
	}
	for _, c := range []byte("PRNBQKprnbqk") {
		if _, ok := KindFromLetter(c); !ok {
			t.Errorf("KindFromLetter(%c) not recognised", c)
		}
	}
	if _, ok := KindFromLetter('x'); ok {
		t.Error("KindFromLetter('x') recognised")
	}
}

func TestSide(t *testing.T) {
	if First.Opposite() != Second || Second.Opposite() != First {
		t.Error("Opposite() is not an involution")
	}
	if First.PawnDirection() != 1 || Second.PawnDirection() != -1 {
		t.Error("PawnDirection() wrong")
	}
	if First.String() != "First" || Second.String() != "Second" {
		t.Error("String() wrong")
	}
}
