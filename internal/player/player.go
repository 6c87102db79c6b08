// Package player binds a side to a way of choosing moves: a human at the
// keyboard, a uniform random pick, or one of the search strategies at a
// fixed depth.
package player

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

// Kind selects how a player chooses its moves.
type Kind uint8

const (
	Human Kind = iota
	Random
	Minimax
	AlphaBeta
)

var kindNames = [...]string{
	Human:     config.KindHuman,
	Random:    config.KindRandom,
	Minimax:   config.KindMinimax,
	AlphaBeta: config.KindAlphaBeta,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind decodes a kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Human, fmt.Errorf("unknown player kind %q: %w", s, errors.ErrInvalidConfig)
}

// Player chooses actions for one side.
type Player struct {
	Kind  Kind
	Depth int
	Side  chess.Side
	ID    uuid.UUID

	rng     search.Rand
	workers int
}

// Option configures a Player.
type Option func(*Player)

// WithRand sets the random source used by Random players and by the
// search tie-break.
func WithRand(r search.Rand) Option {
	return func(p *Player) {
		if r != nil {
			p.rng = r
		}
	}
}

// WithWorkers lets searching players evaluate root branches in parallel.
func WithWorkers(n int) Option {
	return func(p *Player) {
		p.workers = n
	}
}

// New validates cfg and creates a player for side.
func New(side chess.Side, cfg config.PlayerConfig, opts ...Option) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s player", side)
	}
	kind, err := ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}

	p := &Player{
		Kind:    kind,
		Depth:   cfg.Depth,
		Side:    side,
		ID:      uuid.New(),
		rng:     search.DefaultRand,
		workers: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// IsHuman reports whether the driver must supply this player's moves.
func (p *Player) IsHuman() bool {
	return p.Kind == Human
}

func (p *Player) String() string {
	switch p.Kind {
	case Minimax, AlphaBeta:
		return fmt.Sprintf("%s(%d)", p.Kind, p.Depth)
	}
	return p.Kind.String()
}

// GetAction returns the action this player commits in pos.
//
// It panics for a Human player, when pos has another side to move, or when
// the side to move has no legal action. Callers check
// engine.HasAnyLegalMove first.
func (p *Player) GetAction(pos *chess.Position) chess.Action {
	return p.Choose(pos).Action
}

// Choose is GetAction with the search statistics. A Random player reports
// every legal action as a candidate and no visited nodes.
func (p *Player) Choose(pos *chess.Position) search.Result {
	if p.Kind == Human {
		panic("player: GetAction called for a human player")
	}
	if pos.Turn != p.Side {
		panic(fmt.Sprintf("player: %s player asked to move for %s", p.Side, pos.Turn))
	}

	switch p.Kind {
	case Random:
		return p.random(pos)
	case Minimax:
		return search.Minimax(pos, p.Depth, p.searchOptions()...)
	case AlphaBeta:
		return search.AlphaBeta(pos, p.Depth, p.searchOptions()...)
	}
	panic(fmt.Sprintf("player: unknown kind %v", p.Kind))
}

func (p *Player) random(pos *chess.Position) search.Result {
	actions := engine.LegalActions(pos)
	if len(actions) == 0 {
		panic(fmt.Sprintf("player: no legal action for %s in %s", pos.Turn, pos.FEN()))
	}

	return search.Result{
		Action:     actions[p.rng.IntN(len(actions))],
		Value:      pos.MaterialBalance(),
		Candidates: actions,
	}
}

func (p *Player) searchOptions() []search.Option {
	return []search.Option{search.WithRand(p.rng), search.WithWorkers(p.workers)}
}
