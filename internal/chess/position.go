package chess

// StandardSize is the side length of a standard chess board.
const StandardSize = 8

// Position is the full game state: the grid, the side to move and the
// record of committed actions.
type Position struct {
	// Board side length; Squares holds Size*Size entries, row-major from rank 1.
	Size    int
	Squares []Piece

	// Who has the next move.
	Turn Side

	// The most recently committed action, nil before the first move.
	LastAction *Action

	// Every committed action except LastAction, oldest first.
	Record []Action

	// Square picked by an interactive driver; cleared on every commit.
	Selected *Square
}

// NewPosition creates an empty board of the given size with First to move.
func NewPosition(size int) *Position {
	if size < 1 {
		size = StandardSize
	}
	return &Position{
		Size:    size,
		Squares: make([]Piece, size*size),
		Turn:    First,
	}
}

// NewStandardPosition creates an 8x8 board with the standard starting layout.
func NewStandardPosition() *Position {
	p := NewPosition(StandardSize)
	p.MustPlaceLayout(StandardLayout)
	return p
}

// InBounds reports whether sq lies on the board.
func (p *Position) InBounds(sq Square) bool {
	return sq.InBounds(p.Size)
}

func (p *Position) index(sq Square) int {
	return sq.Row*p.Size + sq.Col
}

// PieceAt returns the piece on sq and whether the square is occupied.
// Off-board squares report as empty.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !p.InBounds(sq) {
		return Piece{}, false
	}
	piece := p.Squares[p.index(sq)]
	return piece, !piece.IsEmpty()
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (p *Position) IsEmpty(sq Square) bool {
	return p.InBounds(sq) && p.Squares[p.index(sq)].IsEmpty()
}

// Set places a piece on sq, replacing whatever was there.
func (p *Position) Set(sq Square, piece Piece) {
	if p.InBounds(sq) {
		p.Squares[p.index(sq)] = piece
	}
}

// Clear empties sq.
func (p *Position) Clear(sq Square) {
	p.Set(sq, Piece{})
}

// ClearAll empties every square. Turn and history are untouched.
func (p *Position) ClearAll() {
	for i := range p.Squares {
		p.Squares[i] = Piece{}
	}
}

// SquareOf returns the first square, scanning from rank 1, holding a piece
// of the given kind and side. It reports false when no such piece remains.
func (p *Position) SquareOf(kind PieceKind, side Side) (Square, bool) {
	for i, piece := range p.Squares {
		if piece.Kind == kind && piece.Side == side {
			return Square{Row: i / p.Size, Col: i % p.Size}, true
		}
	}
	return Square{}, false
}

// Occupied returns every square holding a piece of the given side,
// scanning from rank 1.
func (p *Position) Occupied(side Side) []Square {
	var squares []Square
	for i, piece := range p.Squares {
		if !piece.IsEmpty() && piece.Side == side {
			squares = append(squares, Square{Row: i / p.Size, Col: i % p.Size})
		}
	}
	return squares
}

// Clone creates a fully independent deep copy of the position.
func (p *Position) Clone() *Position {
	c := &Position{
		Size:    p.Size,
		Squares: make([]Piece, len(p.Squares)),
		Turn:    p.Turn,
	}
	copy(c.Squares, p.Squares)
	if p.LastAction != nil {
		last := *p.LastAction
		c.LastAction = &last
	}
	if len(p.Record) > 0 {
		c.Record = make([]Action, len(p.Record))
		copy(c.Record, p.Record)
	}
	if p.Selected != nil {
		sel := *p.Selected
		c.Selected = &sel
	}
	return c
}

// Last returns the most recently committed action.
func (p *Position) Last() (Action, bool) {
	if p.LastAction == nil {
		return Action{}, false
	}
	return *p.LastAction, true
}

// History returns a copy of every committed action, oldest first.
func (p *Position) History() []Action {
	history := make([]Action, 0, len(p.Record)+1)
	history = append(history, p.Record...)
	if p.LastAction != nil {
		history = append(history, *p.LastAction)
	}
	return history
}

// Plies returns the number of committed actions.
func (p *Position) Plies() int {
	n := len(p.Record)
	if p.LastAction != nil {
		n++
	}
	return n
}

// HomeRow returns the back-rank row of a side.
func (p *Position) HomeRow(side Side) int {
	if side == First {
		return 0
	}
	return p.Size - 1
}

// PawnHomeRow returns the row a side's pawns start on.
func (p *Position) PawnHomeRow(side Side) int {
	if side == First {
		return 1
	}
	return p.Size - 2
}

// LastRow returns the row on which a side's pawns promote.
func (p *Position) LastRow(side Side) int {
	return p.HomeRow(side.Opposite())
}

// KingHomeCol returns the file a king starts on and castles from.
func (p *Position) KingHomeCol() int {
	return p.Size / 2
}
