// input.go - Interactive move entry for human players
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// errQuit stops the game when the human gives up.
var errQuit = errors.New("quit")

// lineReader is the part of *readline.Instance the move prompt uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// newLineReader returns a readline editor with history for a terminal and
// a plain line scanner otherwise, so moves can be piped in.
func newLineReader(stdinIsTerminal bool) (lineReader, error) {
	if !stdinIsTerminal {
		return &scanReader{scanner: bufio.NewScanner(os.Stdin)}, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile(),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}
	return rl, nil
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("board"),
	readline.PcItem("moves"),
	readline.PcItem("select"),
	readline.PcItem("history"),
	readline.PcItem("quit"),
)

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "chess-play_history")
}

// scanReader reads moves line by line from a non-interactive stream.
type scanReader struct {
	scanner *bufio.Scanner
}

func (r *scanReader) Readline() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *scanReader) SetPrompt(string) {}

func (r *scanReader) Close() error { return nil }

const promptHelp = `Enter a move as start and end square, e.g. e2e4 (add n, b or r to under-promote: e7e8n).
Commands:
  board          show the board
  moves          list every legal move
  select <sq>    show the moves of the piece on <sq>
  history        show the moves played so far
  quit           stop the game
`

// humanInput reads moves for human players from r, writing replies and
// diagrams to w.
func humanInput(r lineReader, w io.Writer, style output.BoardStyle) game.HumanInput {
	return func(s *game.Session, rejected error) (chess.Action, error) {
		if rejected != nil {
			fmt.Fprintf(w, "Illegal move: %v\n", rejected)
		}
		r.SetPrompt(fmt.Sprintf("%s> ", s.Position.Turn))

		for {
			line, err := r.Readline()
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return chess.Action{}, errQuit
			}
			if err != nil {
				return chess.Action{}, err
			}

			fields := strings.Fields(strings.ToLower(line))
			if len(fields) == 0 {
				continue
			}

			switch fields[0] {
			case "help", "?":
				fmt.Fprint(w, promptHelp)
			case "board":
				output.WriteBoard(w, s.Position, style) //nolint:errcheck // best-effort prompt output
			case "moves":
				fmt.Fprintln(w, strings.Join(moveList(engine.LegalActions(s.Position)), " "))
			case "select":
				showSelection(s, fields[1:], w, style)
			case "history":
				output.WriteMoveList(w, s.Position.History(), output.FirstMover(s.Position), "", output.DefaultLineLength) //nolint:errcheck // best-effort prompt output
			case "quit", "exit", "resign":
				return chess.Action{}, errQuit
			default:
				action, err := s.ParseMove(fields[0])
				if err != nil {
					fmt.Fprintf(w, "Cannot read move %q: %v (type 'help')\n", fields[0], err)
					continue
				}
				return action, nil
			}
		}
	}
}

func showSelection(s *game.Session, args []string, w io.Writer, style output.BoardStyle) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: select <square>")
		return
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintf(w, "Bad square: %v\n", err)
		return
	}
	actions, err := s.Select(sq)
	if err != nil {
		fmt.Fprintf(w, "Cannot select %s: %v\n", sq, err)
		return
	}
	output.WriteBoard(w, s.Position, style) //nolint:errcheck // best-effort prompt output
	s.Deselect()
	if len(actions) == 0 {
		fmt.Fprintf(w, "%s has no legal moves\n", sq)
		return
	}
	fmt.Fprintln(w, strings.Join(moveList(actions), " "))
}

func moveList(actions []chess.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	return out
}
