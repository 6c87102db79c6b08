// Package output renders games for people and programs: board diagrams,
// wrapped move lists and JSON records.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/game"
)

// DefaultLineLength is the wrap column of move lists.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first error the underlying writer reported.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WriteMoveList writes history as numbered move pairs ("1. e2e4 e7e5
// 2. ..."), wrapped at maxLineLength, followed by result when it is not
// empty. A history starting with Second to move opens with "1...".
func WriteMoveList(w io.Writer, history []chess.Action, firstMover chess.Side, result string, maxLineLength int) error {
	ow := NewOutputWriter(w, maxLineLength)

	side := firstMover
	number := 1
	for i, action := range history {
		switch {
		case side == chess.First:
			ow.Write(fmt.Sprintf("%d.", number))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", number))
		}
		ow.Write(action.String())
		if side == chess.Second {
			number++
		}
		side = side.Opposite()
	}
	if result != "" {
		ow.Write(result)
	}
	ow.NewLine()
	return ow.Err()
}

// WriteSummary writes a one-line description of a finished or interrupted
// session followed by its move list.
func WriteSummary(w io.Writer, s *game.Session) error {
	outcome := s.Outcome()
	if _, err := fmt.Fprintf(w, "Game %s: %s vs %s, %s after %d plies\n",
		s, s.Players[chess.First], s.Players[chess.Second], outcome, s.Position.Plies()); err != nil {
		return err
	}
	return WriteMoveList(w, s.Position.History(), FirstMover(s.Position), outcome.Result(), DefaultLineLength)
}

// FirstMover works out which side made the first recorded move of pos.
func FirstMover(pos *chess.Position) chess.Side {
	if pos.Plies()%2 == 0 {
		return pos.Turn
	}
	return pos.Turn.Opposite()
}
