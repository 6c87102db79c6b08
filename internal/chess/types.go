// Package chess provides the core board model: squares, pieces, actions
// and positions.
package chess

// Side represents one of the two players. First moves first.
type Side uint8

const (
	First Side = iota
	Second
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == First {
		return "First"
	}
	return "Second"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == First {
		return Second
	}
	return First
}

// PawnDirection returns the row step of a pawn advance: +1 for First, -1 for Second.
func (s Side) PawnDirection() int {
	if s == First {
		return 1
	}
	return -1
}

// PieceKind represents a chess piece type.
type PieceKind uint8

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a layout letter (either case) to a piece kind.
func KindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'R', 'r':
		return Rook, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return NoPiece, false
}

// Piece is a piece on the board. The zero value is an empty square.
type Piece struct {
	Kind     PieceKind
	Side     Side
	HasMoved bool // Set the first time the piece is relocated; gates castling
}

// NewPiece creates an unmoved piece.
func NewPiece(kind PieceKind, side Side) Piece {
	return Piece{Kind: kind, Side: side}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Letter returns the layout letter: uppercase for First, lowercase for Second.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Side == Second && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// ActionType classifies a single physical move.
type ActionType uint8

const (
	Normal ActionType = iota
	Capture
	EnPassant
	Castling
	Promotion
)

// String returns the string representation of an action type.
func (t ActionType) String() string {
	names := []string{"Normal", "Capture", "EnPassant", "Castling", "Promotion"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// CastleKind distinguishes short (toward the higher file) and long castling.
type CastleKind uint8

const (
	Short CastleKind = iota
	Long
)

// String returns the string representation of a castle kind.
func (c CastleKind) String() string {
	if c == Long {
		return "Long"
	}
	return "Short"
}

// ActionKind is the full classification of an action. Castle is only
// meaningful for Castling and Promote only for Promotion.
type ActionKind struct {
	Type    ActionType
	Castle  CastleKind
	Promote PieceKind
}

// NormalKind returns the kind of a quiet move.
func NormalKind() ActionKind { return ActionKind{Type: Normal} }

// CaptureKind returns the kind of an ordinary capture.
func CaptureKind() ActionKind { return ActionKind{Type: Capture} }

// EnPassantKind returns the kind of an en passant capture.
func EnPassantKind() ActionKind { return ActionKind{Type: EnPassant} }

// CastlingKind returns the kind of a castling move.
func CastlingKind(c CastleKind) ActionKind {
	return ActionKind{Type: Castling, Castle: c}
}

// PromotionKind returns the kind of a promotion to the given piece.
func PromotionKind(k PieceKind) ActionKind {
	return ActionKind{Type: Promotion, Promote: k}
}

// String returns a readable form such as "Castling(Short)" or "Promotion(Queen)".
func (k ActionKind) String() string {
	switch k.Type {
	case Castling:
		return "Castling(" + k.Castle.String() + ")"
	case Promotion:
		return "Promotion(" + k.Promote.String() + ")"
	}
	return k.Type.String()
}

// Action is a single move: where it starts, where it ends and what kind it is.
type Action struct {
	Start Square
	End   Square
	Kind  ActionKind
}

// NewAction creates an action.
func NewAction(start, end Square, kind ActionKind) Action {
	return Action{Start: start, End: end, Kind: kind}
}

// String returns the coordinate notation of the action, e.g. "e2e4".
// Promotions carry the lowercase target letter, e.g. "e7e8q".
func (a Action) String() string {
	s := a.Start.String() + a.End.String()
	if a.Kind.Type == Promotion {
		s += string(rune(a.Kind.Promote.Letter() + 'a' - 'A'))
	}
	return s
}
