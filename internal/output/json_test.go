package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestGameToJSON(t *testing.T) {
	s := playedSession(t, "4k3/P7/8/8/8/8/8/4K3", "a7a8n", "e8d7")

	jg := GameToJSON(s)

	testutil.AssertEqual(t, jg.ID, s.ID.String())
	testutil.AssertEqual(t, jg.Nickname, s.Nickname)
	testutil.AssertEqual(t, jg.First, JSONPlayer{ID: s.Players[chess.First].ID.String(), Kind: "human"})
	testutil.AssertEqual(t, jg.Result, "*")
	testutil.AssertEqual(t, jg.Outcome, "in progress")
	testutil.AssertEqual(t, jg.PlyCount, 2)
	testutil.AssertEqual(t, jg.FinalLayout, s.Position.FEN())
	testutil.AssertEqual(t, len(jg.Moves), 2)

	promo := jg.Moves[0]
	testutil.AssertEqual(t, promo.Ply, 1)
	testutil.AssertEqual(t, promo.Side, "First")
	testutil.AssertEqual(t, promo.Move, "a7a8n")
	testutil.AssertEqual(t, promo.From, "a7")
	testutil.AssertEqual(t, promo.To, "a8")
	testutil.AssertEqual(t, promo.Kind, chess.Promotion.String())
	testutil.AssertEqual(t, promo.Promotion, chess.Knight.String())
	testutil.AssertEqual(t, promo.Eval, "+3.45")
	testutil.AssertEqual(t, jg.Moves[1].Promotion, "")
}

func TestOutputGameJSON(t *testing.T) {
	s := playedSession(t, chess.StandardLayout, "f2f3", "e7e5", "g2g4", "d8h4")

	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputGameJSON(s, &buf))

	var decoded JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded.Result, "0-1")
	testutil.AssertEqual(t, decoded.Outcome, "Second wins")
	testutil.AssertEqual(t, decoded.Moves[3].Status, "Checkmate")
	testutil.AssertEqual(t, decoded.Moves[3].Move, "d8h4")
}

func TestOutputGamesJSON(t *testing.T) {
	a := playedSession(t, chess.StandardLayout, "e2e4")
	b := playedSession(t, chess.StandardLayout)

	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputGamesJSON([]*game.Session{a, b}, &buf))

	var decoded JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, len(decoded.Games), 2)
	testutil.AssertEqual(t, decoded.Games[0].ID, a.ID.String())
	testutil.AssertEqual(t, decoded.Games[1].PlyCount, 0)
	if decoded.Games[1].Moves != nil {
		t.Errorf("Moves = %v, want omitted", decoded.Games[1].Moves)
	}
}
