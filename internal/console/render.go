// Package console is the terminal front end: banner, board rendering, event
// messages and the stdin prompt.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/krishanu7/sea-battle/internal/game"
)

var symbols = map[game.Cell]string{
	game.CellEmpty: "O",
	game.CellShip:  "■",
	game.CellHit:   "X",
	game.CellMiss:  ".",
}

// RenderBoard draws b with 1-based row and column headers. Concealed boards
// draw their ships as empty water.
func RenderBoard(b *game.Board) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 1; col <= b.Size(); col++ {
		fmt.Fprintf(&sb, " | %d", col)
	}
	sb.WriteString(" |")

	for r, row := range b.Grid() {
		fmt.Fprintf(&sb, "\n%d", r+1)
		for _, c := range row {
			if c == game.CellShip && b.Concealed() {
				c = game.CellEmpty
			}
			fmt.Fprintf(&sb, " | %s", symbols[c])
		}
		sb.WriteString(" |")
	}
	return sb.String()
}

// Greet prints the banner and the input format.
func Greet(w io.Writer) {
	fmt.Fprintln(w, "-------------------")
	fmt.Fprintln(w, "    Sea  Battle    ")
	fmt.Fprintln(w, "-------------------")
	fmt.Fprintln(w, " input format: x y ")
	fmt.Fprintln(w, " x - row number    ")
	fmt.Fprintln(w, " y - column number ")
}
