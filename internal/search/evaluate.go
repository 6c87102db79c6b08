// Package search picks an action for the side to move by fixed-depth
// adversarial search: plain minimax over a materialised tree, or
// alpha-beta pruning by pure recursion. First maximises, Second minimises.
package search

import (
	"fmt"
	"math"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Evaluate scores pos from First's point of view. A checkmated side to
// move has lost (-Inf for First, +Inf for Second), stalemate is exactly 0
// and any other position scores its material balance.
func Evaluate(pos *chess.Position) float64 {
	if !engine.HasAnyLegalMove(pos) {
		return terminalValue(pos)
	}
	return pos.MaterialBalance()
}

// terminalValue scores a position whose side to move has no legal action.
func terminalValue(pos *chess.Position) float64 {
	if !engine.IsInCheck(pos, pos.Turn) {
		return 0
	}
	if pos.Turn == chess.First {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// maximising reports whether the side to move picks the highest value.
func maximising(pos *chess.Position) bool {
	return pos.Turn == chess.First
}

// successor returns a clone of pos with action committed. The action must
// come from the legal move generator.
func successor(pos *chess.Position, action chess.Action) *chess.Position {
	next := pos.Clone()
	if err := engine.CommitMove(next, action); err != nil {
		panic(fmt.Sprintf("search: generated action rejected: %v", err))
	}
	return next
}

// rootActions returns the legal actions at the root of a search and
// panics when there are none.
func rootActions(pos *chess.Position) []chess.Action {
	actions := engine.LegalActions(pos)
	if len(actions) == 0 {
		panic(fmt.Sprintf("search: no legal action for %s in %s", pos.Turn, pos.FEN()))
	}
	return actions
}

func clampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	return depth
}
