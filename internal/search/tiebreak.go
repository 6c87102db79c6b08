package search

import (
	"math/rand/v2"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Rand is the random source used to break ties between equally valued
// root actions. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// DefaultRand draws from the runtime-seeded global source of math/rand/v2.
var DefaultRand Rand = globalRand{}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Result is the outcome of a search.
type Result struct {
	Action     chess.Action   // The chosen action, sampled from Candidates
	Value      float64        // Value of the position under optimal play to the search depth
	Candidates []chess.Action // Every root action achieving Value, in generation order
	Nodes      int            // Positions visited, root included
	Tree       *Node          // Materialised tree; minimax only
}

// Option configures a search.
type Option func(*options)

type options struct {
	rng     Rand
	workers int
}

// WithRand sets the random source for the tie-break.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithWorkers evaluates root branches on n goroutines. Results are
// re-ordered before the tie-break, so the choice matches a sequential
// search given the same random source.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{rng: DefaultRand, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// candidates collects the tied-best root actions: the set resets on a
// strict improvement and grows on an exact tie.
type candidates struct {
	maximise bool
	best     float64
	actions  []chess.Action
}

func newCandidates(maximise bool) *candidates {
	return &candidates{maximise: maximise}
}

func (c *candidates) offer(action chess.Action, value float64) {
	switch {
	case len(c.actions) == 0, c.better(value):
		c.best = value
		c.actions = append(c.actions[:0], action)
	case value == c.best:
		c.actions = append(c.actions, action)
	}
}

func (c *candidates) better(value float64) bool {
	if c.maximise {
		return value > c.best
	}
	return value < c.best
}

// pick samples one of the tied-best actions uniformly.
func (c *candidates) pick(rng Rand) chess.Action {
	return c.actions[rng.IntN(len(c.actions))]
}

func (c *candidates) result(rng Rand, nodes int) Result {
	list := make([]chess.Action, len(c.actions))
	copy(list, c.actions)
	return Result{
		Action:     c.pick(rng),
		Value:      c.best,
		Candidates: list,
		Nodes:      nodes,
	}
}
