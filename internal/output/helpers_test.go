package output

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

// playedSession returns a human-vs-human session on layout with moves
// already committed.
func playedSession(t *testing.T, layout string, moves ...string) *game.Session {
	t.Helper()
	cfg := config.NewConfigBuilder().
		WithFirst(config.KindHuman, 1).
		WithSecond(config.KindHuman, 1).
		WithLayout(layout, chess.StandardSize).
		Build()
	s, err := game.New(cfg)
	testutil.AssertNoError(t, err)

	for _, m := range moves {
		action, err := s.ParseMove(m)
		testutil.AssertNoError(t, err)
		_, err = s.Commit(action)
		testutil.AssertNoError(t, err, "move %s", m)
	}
	return s
}
