package game

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Outcome is the state of a game from the driver's point of view.
type Outcome uint8

const (
	InProgress Outcome = iota
	FirstWins
	SecondWins
	Draw     // Stalemate
	PlyLimit // Stopped by the configured ply limit
)

var outcomeNames = [...]string{
	InProgress: "in progress",
	FirstWins:  "First wins",
	SecondWins: "Second wins",
	Draw:       "draw by stalemate",
	PlyLimit:   "stopped at ply limit",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Result returns the outcome as a game-result token: "1-0", "0-1",
// "1/2-1/2", or "*" for an unfinished game.
func (o Outcome) Result() string {
	switch o {
	case FirstWins:
		return "1-0"
	case SecondWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// IsOver reports whether no further move will be played.
func (o Outcome) IsOver() bool {
	return o != InProgress
}

// Winner returns the winning side of a decisive game.
func (o Outcome) Winner() (chess.Side, bool) {
	switch o {
	case FirstWins:
		return chess.First, true
	case SecondWins:
		return chess.Second, true
	}
	return chess.First, false
}

// outcomeOf classifies pos. A mate or stalemate on the last allowed ply
// takes precedence over the ply limit.
func outcomeOf(pos *chess.Position, maxPlies int) Outcome {
	switch engine.PositionStatus(pos) {
	case engine.Checkmate:
		if pos.Turn == chess.First {
			return SecondWins
		}
		return FirstWins
	case engine.Stalemate:
		return Draw
	}
	if maxPlies > 0 && pos.Plies() >= maxPlies {
		return PlyLimit
	}
	return InProgress
}
