// Package game drives a game between two players: it owns the live
// position, asks each side for its move in turn and records what was
// played.
package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/player"
)

// MoveRecord describes one committed ply.
type MoveRecord struct {
	Ply        int           // 1-based
	Side       chess.Side    // Side that moved
	Player     string        // Player description, e.g. "alphabeta(3)"
	Action     chess.Action  // Action committed
	Value      float64       // Search value; material balance after the move when nothing searched
	Candidates int           // Tied-best actions the move was sampled from
	Nodes      int           // Positions the search visited
	Elapsed    time.Duration // Time taken to choose the move
	Status     engine.Status // Status of the position after the move
}

// HumanInput supplies the move of a human player. rejected is why the
// previous attempt at this ply was refused, or nil on the first attempt.
// Returning an error stops the game with that error.
type HumanInput func(s *Session, rejected error) (chess.Action, error)

// choice is what a player reported about the move it picked.
type choice struct {
	value      float64
	candidates int
	nodes      int
}

// Session is one game in progress.
type Session struct {
	ID       uuid.UUID
	Nickname string
	Started  time.Time
	Position *chess.Position
	Players  [2]*player.Player
	MaxPlies int

	moves []MoveRecord
}

// New creates a session from a validated configuration. A non-zero seed
// makes every random choice of the game reproducible.
func New(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pos, err := cfg.Game.NewPosition()
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	opts := []player.Option{player.WithWorkers(cfg.Search.Workers)}
	if cfg.Search.Seed != 0 {
		opts = append(opts, player.WithRand(rand.New(rand.NewPCG(cfg.Search.Seed, cfg.Search.Seed>>1))))
	}

	s := &Session{
		ID:       uuid.New(),
		Nickname: petname.Generate(2, "-"),
		Started:  time.Now(),
		Position: pos,
		MaxPlies: cfg.Game.MaxPlies,
	}
	for _, side := range []chess.Side{chess.First, chess.Second} {
		p, err := player.New(side, cfg.Player(side), opts...)
		if err != nil {
			return nil, err
		}
		s.Players[side] = p
	}
	return s, nil
}

// String identifies the session in logs.
func (s *Session) String() string {
	return fmt.Sprintf("%s (%s)", s.Nickname, s.ID)
}

// ToMove returns the player whose turn it is.
func (s *Session) ToMove() *player.Player {
	return s.Players[s.Position.Turn]
}

// Outcome classifies the current position.
func (s *Session) Outcome() Outcome {
	return outcomeOf(s.Position, s.MaxPlies)
}

// Moves returns a copy of the records of every committed ply.
func (s *Session) Moves() []MoveRecord {
	out := make([]MoveRecord, len(s.moves))
	copy(out, s.moves)
	return out
}

// Select marks the piece on sq for the side to move and returns the
// actions it can legally make. Selecting an empty square or an opposing
// piece fails and clears the selection.
func (s *Session) Select(sq chess.Square) ([]chess.Action, error) {
	if s.Outcome().IsOver() {
		return nil, errors.ErrGameOver
	}
	s.Position.Selected = nil

	piece, ok := s.Position.PieceAt(sq)
	if !ok {
		return nil, fmt.Errorf("%s: %w", sq, errors.ErrStartSquareEmpty)
	}
	if piece.Side != s.Position.Turn {
		return nil, fmt.Errorf("%s: %w", sq, errors.ErrInvalidPieceColor)
	}

	selected := sq
	s.Position.Selected = &selected
	return engine.LegalActionsFrom(s.Position, sq), nil
}

// Deselect clears the selected square.
func (s *Session) Deselect() {
	s.Position.Selected = nil
}

// ParseMove turns typed move text into an action for the current
// position. The text is coordinate notation, optionally followed by a
// promotion letter ("e7e8n"); a pawn reaching the last row without one
// promotes to a queen.
func (s *Session) ParseMove(text string) (chess.Action, error) {
	text = strings.TrimSpace(text)
	var promote byte
	if len(text) == 5 {
		promote = text[4]
		text = text[:4]
	}
	parsed, err := chess.ParseAction(text)
	if err != nil {
		return chess.Action{}, err
	}

	action := engine.ActionFromSquares(s.Position, parsed.Start, parsed.End)
	if promote == 0 {
		return action, nil
	}
	kind, ok := chess.KindFromLetter(promote)
	if !ok || action.Kind.Type != chess.Promotion {
		return chess.Action{}, fmt.Errorf("%q: %w", text+string(promote), errors.ErrInvalidMoveString)
	}
	action.Kind.Promote = kind
	return action, nil
}

// Commit plays action for the side to move. A rejected action leaves the
// game unchanged and returns the engine's *errors.MoveError.
func (s *Session) Commit(action chess.Action) (MoveRecord, error) {
	return s.commit(action, choice{}, 0)
}

func (s *Session) commit(action chess.Action, c choice, elapsed time.Duration) (MoveRecord, error) {
	if s.Outcome().IsOver() {
		return MoveRecord{}, errors.ErrGameOver
	}
	mover := s.ToMove()
	if err := engine.CommitMove(s.Position, action); err != nil {
		return MoveRecord{}, err
	}

	record := MoveRecord{
		Ply:        s.Position.Plies(),
		Side:       mover.Side,
		Player:     mover.String(),
		Action:     action,
		Value:      c.value,
		Candidates: c.candidates,
		Nodes:      c.nodes,
		Elapsed:    elapsed,
		Status:     engine.PositionStatus(s.Position),
	}
	if c.nodes == 0 {
		record.Value = s.Position.MaterialBalance()
	}
	s.moves = append(s.moves, record)
	return record, nil
}

// Step plays one ply: a human's move comes from input, any other player
// chooses its own. Input is asked again for as long as it offers illegal
// moves.
func (s *Session) Step(input HumanInput) (MoveRecord, error) {
	if s.Outcome().IsOver() {
		return MoveRecord{}, errors.ErrGameOver
	}

	mover := s.ToMove()
	start := time.Now()
	if mover.IsHuman() {
		if input == nil {
			return MoveRecord{}, fmt.Errorf("%s player is human but no input is attached", mover.Side)
		}
		var rejected error
		for {
			action, err := input(s, rejected)
			if err != nil {
				return MoveRecord{}, err
			}
			record, err := s.commit(action, choice{}, time.Since(start))
			var moveErr *errors.MoveError
			if !errors.As(err, &moveErr) {
				return record, err
			}
			rejected = err
		}
	}

	result := mover.Choose(s.Position)
	c := choice{value: result.Value, candidates: len(result.Candidates), nodes: result.Nodes}
	return s.commit(result.Action, c, time.Since(start))
}

// Play steps until the game is over, calling observe after every ply.
// It returns the final outcome, or the first error a step returned.
func (s *Session) Play(input HumanInput, observe func(MoveRecord)) (Outcome, error) {
	for !s.Outcome().IsOver() {
		record, err := s.Step(input)
		if err != nil {
			return s.Outcome(), err
		}
		if observe != nil {
			observe(record)
		}
	}
	return s.Outcome(), nil
}
