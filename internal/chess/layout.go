package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// StandardLayout is the layout encoding of the standard starting position.
const StandardLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// PlaceLayout clears the grid and places pieces from a rank-by-rank
// encoding read from the highest rank down. A digit skips that many empty
// files, a piece letter places a piece (uppercase First, lowercase Second)
// and '/' starts the next rank. An optional second field "w" or "b" sets
// the side to move; further fields are ignored.
// On error the grid is left cleared.
func (p *Position) PlaceLayout(layout string) error {
	parts := strings.Fields(layout)
	if len(parts) < 1 {
		return fmt.Errorf("empty layout: %w", errors.ErrInvalidLayout)
	}

	p.ClearAll()

	if err := p.placePieces(parts[0]); err != nil {
		return err
	}
	return p.placeSideToMove(parts)
}

// MustPlaceLayout is like PlaceLayout but panics on error. The layout is
// trusted configuration, so a bad one is a programming error.
func (p *Position) MustPlaceLayout(layout string) {
	if err := p.PlaceLayout(layout); err != nil {
		panic(err)
	}
}

// placePieces parses the piece placement field.
func (p *Position) placePieces(placement string) error {
	row := p.Size - 1
	col := 0

	for _, c := range placement {
		switch {
		case c == '/':
			row--
			col = 0
		case c >= '1' && c <= '9':
			col += int(c - '0')
		default:
			kind, ok := KindFromLetter(byte(c))
			if !ok || c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidLayout)
			}
			sq := Square{Row: row, Col: col}
			if !p.InBounds(sq) {
				return fmt.Errorf("piece %c out of bounds: %w", c, errors.ErrInvalidLayout)
			}

			side := First
			if unicode.IsLower(c) {
				side = Second
			}
			p.Set(sq, NewPiece(kind, side))
			col++
		}
	}
	return nil
}

// placeSideToMove parses the optional side to move field.
func (p *Position) placeSideToMove(parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		p.Turn = First
	case "b":
		p.Turn = Second
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidLayout)
	}
	return nil
}

// Layout encodes the grid in the same rank-by-rank form PlaceLayout reads.
func (p *Position) Layout() string {
	var sb strings.Builder

	for row := p.Size - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < p.Size; col++ {
			piece, ok := p.PieceAt(Square{Row: row, Col: col})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(fmt.Sprint(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteString(fmt.Sprint(emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN returns the layout followed by the side to move, e.g. "... w".
func (p *Position) FEN() string {
	if p.Turn == First {
		return p.Layout() + " w"
	}
	return p.Layout() + " b"
}
