package search

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

type strategy struct {
	name string
	run  func(*chess.Position, int, ...Option) Result
}

var strategies = []strategy{
	{"minimax", Minimax},
	{"alphabeta", AlphaBeta},
}

// fixedRand always picks the same index, modulo the set size.
type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func played(t *testing.T, layout string, moves ...string) *chess.Position {
	t.Helper()
	pos := testutil.MustPosition(t, layout)
	for _, m := range moves {
		a := chess.MustParseAction(m)
		if _, err := engine.CommitSquares(pos, a.Start, a.End); err != nil {
			t.Fatalf("CommitSquares(%s) error: %v", m, err)
		}
	}
	return pos
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		pos  func(*testing.T) *chess.Position
		want float64
	}{
		{"initial position", func(t *testing.T) *chess.Position { return chess.NewStandardPosition() }, 0},
		{"second checkmated", func(t *testing.T) *chess.Position { return played(t, testutil.MateInOneLayout, "a1a8") }, math.Inf(1)},
		{"first checkmated", func(t *testing.T) *chess.Position { return played(t, testutil.BackRankMateLayout, "a8a1") }, math.Inf(-1)},
		{"stalemate", func(t *testing.T) *chess.Position { return testutil.MustPosition(t, testutil.StalemateLayout) }, 0},
		{"material", func(t *testing.T) *chess.Position { return testutil.MustPosition(t, testutil.MateInOneLayout) }, 5.25 - 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Evaluate(tt.pos(t)), tt.want)
		})
	}
}

func TestSearch_MateInOne(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   string
		value  float64
	}{
		{"first mates", testutil.MateInOneLayout, "a1a8", math.Inf(1)},
		{"second mates", testutil.BackRankMateLayout, "a8a1", math.Inf(-1)},
	}

	for _, s := range strategies {
		for _, tt := range tests {
			for depth := 1; depth <= 3; depth++ {
				t.Run(s.name+"/"+tt.name, func(t *testing.T) {
					pos := testutil.MustPosition(t, tt.layout)
					got := s.run(pos, depth, WithRand(seeded(1)))

					testutil.AssertEqual(t, got.Action.String(), tt.want, "depth %d", depth)
					testutil.AssertEqual(t, got.Value, tt.value, "depth %d", depth)
					testutil.AssertMoves(t, got.Candidates, []string{tt.want})

					after := pos.Clone()
					testutil.AssertNoError(t, engine.CommitMove(after, got.Action))
					testutil.AssertEqual(t, engine.IsCheckmate(after), true)
				})
			}
		}
	}
}

// stalemateTrapLayout: Qc7 stalemates Second, Qc8 mates.
const stalemateTrapLayout = "k7/8/1K6/8/8/8/8/2Q5"

func TestSearch_PrefersMateOverStalemate(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			got := s.run(testutil.MustPosition(t, stalemateTrapLayout), 1)
			testutil.AssertEqual(t, got.Value, math.Inf(1))
			testutil.AssertMoves(t, got.Candidates, []string{"c1c8"})
		})
	}
}

func TestBuildTree_StalemateLeafScoresZero(t *testing.T) {
	pos := testutil.MustPosition(t, stalemateTrapLayout)
	tree := BuildTree(pos, 1)

	stalemate := chess.MustParseAction("c1c7")
	found := false
	for _, child := range tree.Children {
		if child.Action == stalemate {
			found = true
			testutil.AssertEqual(t, child.Value, 0.0)
			testutil.AssertEqual(t, engine.IsStalemate(child.Position), true)
		}
	}
	if !found {
		t.Fatalf("c1c7 not among %d children", len(tree.Children))
	}
	testutil.AssertEqual(t, tree.Value, math.Inf(1))
}

// TestAlphaBeta_MatchesMinimax checks that pruning never changes the value
// or the set of tied-best actions.
func TestAlphaBeta_MatchesMinimax(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		maxDepth int
		long     bool
	}{
		{"initial", chess.StandardLayout, 2, false},
		{"mate in one", testutil.MateInOneLayout, 3, false},
		{"back rank", testutil.BackRankMateLayout, 3, false},
		{"endgame", testutil.EndgameLayout, 3, false},
		{"kiwipete", testutil.KiwipeteLayout, 2, false},
		{"middlegame", testutil.MiddlegameLayout, 2, false},
		{"middlegame deep", testutil.MiddlegameLayout, 3, true},
		{"capture race", "r3k3/1p6/8/3q4/4N3/8/1P6/R3K3", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.long && testing.Short() {
				t.Skip("skipping deep search in short mode")
			}
			pos := testutil.MustPosition(t, tt.layout)
			for depth := 1; depth <= tt.maxDepth; depth++ {
				mm := Minimax(pos, depth, WithRand(fixedRand(0)))
				ab := AlphaBeta(pos, depth, WithRand(fixedRand(0)))

				testutil.AssertEqual(t, ab.Value, mm.Value, "value at depth %d", depth)
				testutil.AssertEqual(t, testutil.MoveStrings(ab.Candidates), testutil.MoveStrings(mm.Candidates), "candidates at depth %d", depth)
				testutil.AssertEqual(t, ab.Action, mm.Action, "same pick from the same source at depth %d", depth)
				if ab.Nodes > mm.Nodes {
					t.Errorf("depth %d: alpha-beta visited %d nodes, minimax %d", depth, ab.Nodes, mm.Nodes)
				}
			}
		})
	}
}

func TestSearch_TieBreak(t *testing.T) {
	pos := chess.NewStandardPosition()

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			for depth := 1; depth <= 2; depth++ {
				got := s.run(pos, depth, WithRand(fixedRand(3)))
				testutil.AssertEqual(t, len(got.Candidates), 20, "all opening moves tie at depth %d", depth)
				testutil.AssertEqual(t, got.Value, 0.0)
				testutil.AssertEqual(t, got.Action, got.Candidates[3])
			}

			first := s.run(pos, 1, WithRand(seeded(42)))
			second := s.run(pos, 1, WithRand(seeded(42)))
			testutil.AssertEqual(t, first.Action, second.Action, "same seed, same pick")

			seen := make(map[chess.Action]bool)
			rng := seeded(7)
			for i := 0; i < 200; i++ {
				seen[s.run(pos, 1, WithRand(rng)).Action] = true
			}
			if len(seen) < 10 {
				t.Errorf("200 samples covered only %d of 20 tied moves", len(seen))
			}
		})
	}
}

func TestSearch_StrictImprovementResetsCandidates(t *testing.T) {
	// Only exd5 wins material.
	const layout = "4k3/8/8/3p4/4P3/8/8/4K3"
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			got := s.run(testutil.MustPosition(t, layout), 1, WithRand(fixedRand(5)))
			testutil.AssertMoves(t, got.Candidates, []string{"e4d5"})
			testutil.AssertEqual(t, got.Action.Kind, chess.CaptureKind())
			testutil.AssertEqual(t, got.Value, 1.0)
		})
	}
}

func TestSearch_DoesNotMutatePosition(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			pos := played(t, chess.StandardLayout, "e2e4", "d7d5")
			sel := chess.MustParseSquare("e4")
			pos.Selected = &sel
			before := pos.Clone()

			s.run(pos, 2)
			s.run(pos, 2, WithWorkers(4))
			testutil.AssertSamePosition(t, pos, before)
		})
	}
}

func TestSearch_PanicsWithoutLegalMoves(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			testutil.AssertPanics(t, func() {
				s.run(testutil.MustPosition(t, testutil.StalemateLayout), 2)
			}, "stalemate")
			testutil.AssertPanics(t, func() {
				s.run(played(t, testutil.MateInOneLayout, "a1a8"), 1)
			}, "checkmate")
		})
	}
}

func TestSearch_DepthBelowOneSearchesOnePly(t *testing.T) {
	const layout = "4k3/8/8/3p4/4P3/8/8/4K3"
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, layout)
			for _, depth := range []int{0, -3} {
				got := s.run(pos, depth, WithRand(fixedRand(0)))
				want := s.run(pos, 1, WithRand(fixedRand(0)))
				testutil.AssertEqual(t, got.Value, want.Value)
				testutil.AssertEqual(t, got.Candidates, want.Candidates)
			}
		})
	}
}

func TestSearch_WorkersMatchSequential(t *testing.T) {
	layouts := []string{chess.StandardLayout, testutil.EndgameLayout, testutil.KiwipeteLayout}
	for _, s := range strategies {
		for _, layout := range layouts {
			t.Run(s.name, func(t *testing.T) {
				pos := testutil.MustPosition(t, layout)
				seq := s.run(pos, 2, WithRand(seeded(9)))
				par := s.run(pos, 2, WithRand(seeded(9)), WithWorkers(4))

				testutil.AssertEqual(t, par.Value, seq.Value)
				testutil.AssertEqual(t, par.Candidates, seq.Candidates)
				testutil.AssertEqual(t, par.Action, seq.Action)
			})
		}
	}
}

func TestTreeCounts(t *testing.T) {
	tests := []struct {
		name       string
		layout     string
		depth      int
		wantNodes  int
		wantLeaves int
	}{
		{"depth 0", chess.StandardLayout, 0, 1, 1},
		{"depth 1", chess.StandardLayout, 1, 21, 20},
		{"depth 2", chess.StandardLayout, 2, 421, 400},
		{"terminal root", testutil.StalemateLayout, 3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := BuildTree(testutil.MustPosition(t, tt.layout), tt.depth)
			testutil.AssertEqual(t, CountNodes(tree), tt.wantNodes)
			testutil.AssertEqual(t, CountLeaves(tree), tt.wantLeaves)
		})
	}

	testutil.AssertEqual(t, CountNodes(nil), 0)
	testutil.AssertEqual(t, CountLeaves(nil), 0)
}

func TestMinimax_TreeIsConsistent(t *testing.T) {
	pos := testutil.MustPosition(t, testutil.EndgameLayout)
	got := Minimax(pos, 2)

	testutil.AssertEqual(t, got.Nodes, CountNodes(got.Tree))
	testutil.AssertEqual(t, got.Tree.Value, got.Value)
	testutil.AssertEqual(t, CountLeaves(got.Tree), engine.CountPaths(pos, 2))

	for _, child := range got.Tree.Children {
		if child.Position.Turn != chess.Second {
			t.Fatalf("child %s: turn = %s, want Second", child.Action, child.Position.Turn)
		}
		if got.Value < child.Value {
			t.Errorf("root value %v below child %s value %v", got.Value, child.Action, child.Value)
		}
	}
}

func BenchmarkMinimax(b *testing.B) {
	pos := testutil.MustPosition(b, testutil.MiddlegameLayout)
	for i := 0; i < b.N; i++ {
		Minimax(pos, 2, WithRand(fixedRand(0)))
	}
}

func BenchmarkAlphaBeta(b *testing.B) {
	pos := testutil.MustPosition(b, testutil.MiddlegameLayout)
	for _, depth := range []int{2, 3} {
		b.Run(fmt.Sprintf("Depth%d", depth), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				AlphaBeta(pos, depth, WithRand(fixedRand(0)))
			}
		})
	}
}
