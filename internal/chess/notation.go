package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Notation bounds: files 'a'..'h', ranks '1'..'8'.
const (
	FileBase  = 'a'
	RankBase  = '1'
	LastFile  = FileBase + StandardSize - 1
	LastRank  = RankBase + StandardSize - 1
	squareLen = 2
	actionLen = 2 * squareLen
)

// ParseSquare decodes two-character square notation such as "e4".
// The file letter is case-insensitive. A string of the wrong length yields
// ErrInvalidLocationStringLength; unrecognised characters yield
// ErrInvalidLocationString.
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(s)
	if len(s) != squareLen {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidLocationStringLength)
	}

	file := s[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	rank := s[1]
	if file < FileBase || file > LastFile || rank < RankBase || rank > LastRank {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidLocationString)
	}

	return Square{Row: int(rank - RankBase), Col: int(file - FileBase)}, nil
}

// FormatSquare encodes a square as file letter plus rank digit.
func FormatSquare(s Square) string {
	return string([]byte{byte(FileBase + s.Col), byte(RankBase + s.Row)})
}

// ParseAction decodes four-character move notation (start square then end
// square, e.g. "e2e4") into a Normal action. The kind is not inferred here;
// use engine.ActionFromSquares for board-aware classification.
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	if len(s) != actionLen {
		return Action{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidMoveString)
	}
	start, err := ParseSquare(s[:squareLen])
	if err != nil {
		return Action{}, fmt.Errorf("%w: %w", errors.ErrInvalidMoveString, err)
	}
	end, err := ParseSquare(s[squareLen:])
	if err != nil {
		return Action{}, fmt.Errorf("%w: %w", errors.ErrInvalidMoveString, err)
	}
	return Action{Start: start, End: end, Kind: NormalKind()}, nil
}

// MustParseAction is like ParseAction but panics on malformed input.
// The driver is expected to validate interactive input before calling it.
func MustParseAction(s string) Action {
	a, err := ParseAction(s)
	if err != nil {
		panic(err)
	}
	return a
}

// MustParseSquare is like ParseSquare but panics on malformed input.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
