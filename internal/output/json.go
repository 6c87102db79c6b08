package output

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/player"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID          string     `json:"id"`
	Nickname    string     `json:"nickname"`
	Started     time.Time  `json:"started"`
	First       JSONPlayer `json:"first"`
	Second      JSONPlayer `json:"second"`
	Result      string     `json:"result"`
	Outcome     string     `json:"outcome"`
	PlyCount    int        `json:"plyCount"`
	Moves       []JSONMove `json:"moves,omitempty"`
	FinalLayout string     `json:"finalLayout"`
}

// JSONPlayer represents one side's player.
type JSONPlayer struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Depth int    `json:"depth,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	Side       string `json:"side"`
	Move       string `json:"move"`
	From       string `json:"from"`
	To         string `json:"to"`
	Kind       string `json:"kind"`
	Promotion  string `json:"promotion,omitempty"`
	Eval       string `json:"eval"`
	Candidates int    `json:"candidates,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	ElapsedMs  int64  `json:"elapsedMs"`
	Status     string `json:"status"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a session to JSON format.
func GameToJSON(s *game.Session) *JSONGame {
	outcome := s.Outcome()
	jg := &JSONGame{
		ID:          s.ID.String(),
		Nickname:    s.Nickname,
		Started:     s.Started.UTC(),
		First:       playerToJSON(s, chess.First),
		Second:      playerToJSON(s, chess.Second),
		Result:      outcome.Result(),
		Outcome:     outcome.String(),
		PlyCount:    s.Position.Plies(),
		FinalLayout: s.Position.FEN(),
	}

	for _, r := range s.Moves() {
		jg.Moves = append(jg.Moves, moveToJSON(r))
	}
	return jg
}

func playerToJSON(s *game.Session, side chess.Side) JSONPlayer {
	p := s.Players[side]
	jp := JSONPlayer{ID: p.ID.String(), Kind: p.Kind.String()}
	if p.Kind == player.Minimax || p.Kind == player.AlphaBeta {
		jp.Depth = p.Depth
	}
	return jp
}

func moveToJSON(r game.MoveRecord) JSONMove {
	jm := JSONMove{
		Ply:        r.Ply,
		Side:       r.Side.String(),
		Move:       r.Action.String(),
		From:       r.Action.Start.String(),
		To:         r.Action.End.String(),
		Kind:       r.Action.Kind.Type.String(),
		Eval:       FormatValue(r.Value),
		Candidates: r.Candidates,
		Nodes:      r.Nodes,
		ElapsedMs:  r.Elapsed.Milliseconds(),
		Status:     r.Status.String(),
	}
	if r.Action.Kind.Type == chess.Promotion {
		jm.Promotion = r.Action.Kind.Promote.String()
	}
	return jm
}

// FormatValue renders a search value with two decimals and an explicit
// sign; forced mates are "+mate" and "-mate". JSON has no infinities, so
// values always travel as text.
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+mate"
	case math.IsInf(v, -1):
		return "-mate"
	case v == 0:
		return "0.00"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if v > 0 {
		s = "+" + s
	}
	return s
}

// OutputGameJSON writes a single game as indented JSON.
func OutputGameJSON(s *game.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(s))
}

// OutputGamesJSON writes several games as one JSON object.
func OutputGamesJSON(sessions []*game.Session, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, len(sessions))}
	for i, s := range sessions {
		out.Games[i] = GameToJSON(s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
