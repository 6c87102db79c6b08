package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Status summarises the position from the point of view of the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Ongoing"
}

// IsOver reports whether no further move can be played.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.Turn) && !HasAnyLegalMove(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.Turn) && !HasAnyLegalMove(pos)
}

// PositionStatus classifies the position for the side to move.
func PositionStatus(pos *chess.Position) Status {
	inCheck := IsInCheck(pos, pos.Turn)
	if !HasAnyLegalMove(pos) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if inCheck {
		return Check
	}
	return Ongoing
}
