package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// BoardStyle controls how a board diagram is drawn.
type BoardStyle struct {
	Color       bool // ANSI colours and square highlights
	Coordinates bool // Rank numbers and file letters around the grid
}

// palette holds the colours of one diagram. Each is enabled or disabled
// explicitly so the style, not the terminal, decides.
type palette struct {
	first    *color.Color
	second   *color.Color
	empty    *color.Color
	last     *color.Color
	check    *color.Color
	selected *color.Color
	target   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		first:    color.New(color.FgHiWhite, color.Bold),
		second:   color.New(color.FgHiBlue, color.Bold),
		empty:    color.New(color.FgHiBlack),
		last:     color.New(color.BgYellow, color.FgBlack),
		check:    color.New(color.BgRed, color.FgHiWhite, color.Bold),
		selected: color.New(color.BgCyan, color.FgBlack),
		target:   color.New(color.BgGreen, color.FgBlack),
	}
	for _, c := range []*color.Color{p.first, p.second, p.empty, p.last, p.check, p.selected, p.target} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// RenderBoard draws pos from First's side, highest rank at the top.
// Pieces are layout letters (uppercase First, lowercase Second) and empty
// squares are dots. Squares a selected piece can move to show '*' when
// empty. With colour, the last action's squares, a king in check, the
// selected square and its targets are highlighted.
func RenderBoard(pos *chess.Position, style BoardStyle) string {
	pal := newPalette(style.Color)
	last, hasLast := pos.Last()
	checked, inCheck := checkedKing(pos)
	targets := selectionTargets(pos)

	var sb strings.Builder
	for row := pos.Size - 1; row >= 0; row-- {
		if style.Coordinates {
			fmt.Fprintf(&sb, "%2d ", row+1)
		}
		for col := 0; col < pos.Size; col++ {
			sq := chess.Sq(row, col)
			if col > 0 {
				sb.WriteByte(' ')
			}

			cell := pieceCell(pos, sq, targets[sq], pal)
			switch {
			case inCheck && sq == checked:
				cell = pal.check.Sprint(cell)
			case pos.Selected != nil && sq == *pos.Selected:
				cell = pal.selected.Sprint(cell)
			case targets[sq]:
				cell = pal.target.Sprint(cell)
			case hasLast && (sq == last.Start || sq == last.End):
				cell = pal.last.Sprint(cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}

	if style.Coordinates {
		sb.WriteString("   ")
		for col := 0; col < pos.Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(chess.FileBase + col))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pieceCell(pos *chess.Position, sq chess.Square, target bool, pal palette) string {
	piece, ok := pos.PieceAt(sq)
	switch {
	case !ok && target:
		return "*"
	case !ok:
		return pal.empty.Sprint(".")
	case piece.Side == chess.First:
		return pal.first.Sprint(string(piece.Letter()))
	default:
		return pal.second.Sprint(string(piece.Letter()))
	}
}

// checkedKing returns the square of the side to move's king when it is
// attacked.
func checkedKing(pos *chess.Position) (chess.Square, bool) {
	if !engine.IsInCheck(pos, pos.Turn) {
		return chess.Square{}, false
	}
	return pos.SquareOf(chess.King, pos.Turn)
}

func selectionTargets(pos *chess.Position) map[chess.Square]bool {
	targets := make(map[chess.Square]bool)
	if pos.Selected == nil {
		return targets
	}
	for _, a := range engine.LegalActionsFrom(pos, *pos.Selected) {
		targets[a.End] = true
	}
	return targets
}

// StatusLine summarises whose move it is, the last action and any check,
// mate or stalemate, e.g. "Second to move, last e2e4, check".
func StatusLine(pos *chess.Position) string {
	parts := []string{fmt.Sprintf("%s to move", pos.Turn)}
	if last, ok := pos.Last(); ok {
		parts = append(parts, "last "+last.String())
	}
	switch status := engine.PositionStatus(pos); status {
	case engine.Check, engine.Checkmate, engine.Stalemate:
		parts = append(parts, strings.ToLower(status.String()))
	}
	return strings.Join(parts, ", ")
}

// WriteBoard writes the diagram followed by the status line.
func WriteBoard(w io.Writer, pos *chess.Position, style BoardStyle) error {
	_, err := fmt.Fprintf(w, "%s%s\n", RenderBoard(pos, style), StatusLine(pos))
	return err
}
