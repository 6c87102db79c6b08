package search

import (
	"math"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// AlphaBeta searches depth plies (at least one) with alpha-beta pruning
// and no stored tree. Its Value and Candidates equal those of Minimax for
// the same position and depth; only the work differs. It panics if the
// side to move has no legal action.
func AlphaBeta(pos *chess.Position, depth int, opts ...Option) Result {
	o := newOptions(opts)
	depth = clampDepth(depth)
	actions := rootActions(pos)
	maximise := maximising(pos)
	best := newCandidates(maximise)
	nodes := 1

	if o.workers > 1 {
		for _, r := range alphaBetaParallel(pos, actions, depth-1, o.workers) {
			best.offer(r.Action, r.Value)
			nodes += r.Payload.(int)
		}
		return best.result(o.rng, nodes)
	}

	for _, action := range actions {
		// A child is searched exactly whenever it can equal or beat the
		// best so far; anything worse only needs to be shown worse.
		alpha, beta := math.Inf(-1), math.Inf(1)
		if len(best.actions) > 0 {
			if maximise {
				alpha = math.Nextafter(best.best, math.Inf(-1))
			} else {
				beta = math.Nextafter(best.best, math.Inf(1))
			}
		}
		value := alphaBeta(successor(pos, action), depth-1, alpha, beta, &nodes)
		best.offer(action, value)
	}
	return best.result(o.rng, nodes)
}

// alphaBeta returns the fail-soft value of pos within (alpha, beta):
// exact when it lies strictly inside the window, otherwise a bound on the
// side of the window it fell.
func alphaBeta(pos *chess.Position, depth int, alpha, beta float64, nodes *int) float64 {
	*nodes++
	if depth <= 0 {
		return Evaluate(pos)
	}
	actions := engine.LegalActions(pos)
	if len(actions) == 0 {
		return terminalValue(pos)
	}

	if maximising(pos) {
		value := math.Inf(-1)
		for _, action := range actions {
			value = math.Max(value, alphaBeta(successor(pos, action), depth-1, alpha, beta, nodes))
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, action := range actions {
		value = math.Min(value, alphaBeta(successor(pos, action), depth-1, alpha, beta, nodes))
		beta = math.Min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}

// alphaBetaParallel searches each root branch with a full window on the
// worker pool. Payload carries the branch's node count.
func alphaBetaParallel(pos *chess.Position, actions []chess.Action, depth, workers int) []worker.ProcessResult {
	items := make([]worker.WorkItem, len(actions))
	for i, action := range actions {
		items[i] = worker.WorkItem{Index: i, Action: action, Position: successor(pos, action)}
	}

	return worker.RunOrdered(items, func(item worker.WorkItem) worker.ProcessResult {
		nodes := 0
		value := alphaBeta(item.Position, depth, math.Inf(-1), math.Inf(1), &nodes)
		return worker.ProcessResult{Index: item.Index, Action: item.Action, Value: value, Payload: nodes}
	}, worker.WithWorkers(workers))
}
