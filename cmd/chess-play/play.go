// play.go - Game loop, move reporting and statistics
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// tally counts finished games by outcome.
type tally struct {
	played     int
	firstWins  int
	secondWins int
	draws      int
	unfinished int
}

func (t *tally) add(o game.Outcome) {
	t.played++
	switch o {
	case game.FirstWins:
		t.firstWins++
	case game.SecondWins:
		t.secondWins++
	case game.Draw:
		t.draws++
	default:
		t.unfinished++
	}
}

func (t tally) String() string {
	return fmt.Sprintf("%d games: %d First wins, %d Second wins, %d draws, %d unfinished",
		t.played, t.firstWins, t.secondWins, t.draws, t.unfinished)
}

// runner plays a series of games with one configuration.
type runner struct {
	cfg    *config.Config
	input  game.HumanInput
	logger *log.Logger
	writer output.GameWriter
}

func (r *runner) style() output.BoardStyle {
	return output.BoardStyle{Color: r.cfg.Output.Color, Coordinates: r.cfg.Output.ShowCoordinates}
}

// playGames plays n games, writing each through the game writer as it
// ends. A human quitting ends the series after that game is written.
func (r *runner) playGames(n int) (tally, error) {
	var t tally
	defer func() {
		if err := r.writer.Close(); err != nil {
			r.logger.Printf("writing games: %v", err)
		}
	}()

	for i := 1; i <= n; i++ {
		s, err := game.New(r.cfg)
		if err != nil {
			return t, err
		}
		if r.cfg.Verbosity > 0 {
			r.logger.Printf("game %d/%d %s: %s vs %s", i, n, s, s.Players[0], s.Players[1])
		}

		outcome, err := r.playOne(s)
		quit := errors.Is(err, errQuit)
		if err != nil && !quit {
			return t, fmt.Errorf("game %s: %w", s.Nickname, err)
		}

		t.add(outcome)
		if r.cfg.Verbosity > 0 {
			r.logger.Printf("game %s: %s (%s) after %d plies", s.Nickname, outcome, outcome.Result(), s.Position.Plies())
		}
		if err := r.writer.WriteGame(s); err != nil {
			return t, err
		}
		if quit {
			break
		}
	}

	if r.cfg.Verbosity > 0 && n > 1 {
		r.logger.Printf("played %s", t)
	}
	return t, nil
}

func (r *runner) playOne(s *game.Session) (game.Outcome, error) {
	out := r.cfg.OutputFile
	if r.cfg.Output.ShowBoard {
		output.WriteBoard(out, s.Position, r.style()) //nolint:errcheck // progress display only
	}

	return s.Play(r.input, func(rec game.MoveRecord) {
		if r.cfg.Output.ShowBoard {
			fmt.Fprintf(out, "\n%d. %s plays %s\n", rec.Ply, rec.Side, rec.Action)
			output.WriteBoard(out, s.Position, r.style()) //nolint:errcheck // progress display only
		}
		if r.cfg.Verbosity > 1 {
			r.logger.Printf("ply %d %s %s %s: eval %s, %d candidates, %d nodes, %s",
				rec.Ply, rec.Side, rec.Player, rec.Action, output.FormatValue(rec.Value),
				rec.Candidates, rec.Nodes, rec.Elapsed)
		}
	})
}
