package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// LegalActionsFrom returns every legal action of the piece on start.
// Each destination square is tried in turn with the kind ActionFromSquares
// infers for it. A square that is empty or holds a piece of the side not on
// move yields nothing.
func LegalActionsFrom(pos *chess.Position, start chess.Square) []chess.Action {
	piece, ok := pos.PieceAt(start)
	if !ok || piece.Side != pos.Turn {
		return nil
	}

	var actions []chess.Action
	for row := 0; row < pos.Size; row++ {
		for col := 0; col < pos.Size; col++ {
			end := chess.Square{Row: row, Col: col}
			if end == start {
				continue
			}
			action := ActionFromSquares(pos, start, end)
			if Validate(pos, action) == nil {
				actions = append(actions, action)
			}
		}
	}
	return actions
}

// LegalActions returns every legal action for the side to move, grouped by
// origin square scanning from rank 1.
func LegalActions(pos *chess.Position) []chess.Action {
	var actions []chess.Action
	for _, start := range pos.Occupied(pos.Turn) {
		actions = append(actions, LegalActionsFrom(pos, start)...)
	}
	return actions
}

// HasAnyLegalMove returns true if the side to move has at least one legal action.
func HasAnyLegalMove(pos *chess.Position) bool {
	for _, start := range pos.Occupied(pos.Turn) {
		for row := 0; row < pos.Size; row++ {
			for col := 0; col < pos.Size; col++ {
				end := chess.Square{Row: row, Col: col}
				if end == start {
					continue
				}
				if Validate(pos, ActionFromSquares(pos, start, end)) == nil {
					return true
				}
			}
		}
	}
	return false
}

// CountPaths counts the leaf positions reachable in exactly depth plies
// (a perft count). Every branch is explored on its own clone.
func CountPaths(pos *chess.Position, depth int) int {
	if depth <= 0 {
		return 1
	}
	actions := LegalActions(pos)
	if depth == 1 {
		return len(actions)
	}

	total := 0
	for _, action := range actions {
		next := pos.Clone()
		if err := CommitMove(next, action); err != nil {
			continue
		}
		total += CountPaths(next, depth-1)
	}
	return total
}
