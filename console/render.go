package console

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

// Each cell is drawn as "| c " so a row is four characters per column
// plus the closing bar.
const cellWidth = 4

func cellIcon(state uint8, reveal bool) byte {
	switch state {
	case mb.PositionStateHit:
		return 'X'
	case mb.PositionStateMiss:
		return 'O'
	case mb.PositionStateShip:
		if reveal {
			return 'S'
		}
	}
	return ' '
}

func writeLine(sb *strings.Builder, size int) {
	sb.WriteString("  ")
	sb.WriteString(strings.Repeat("-", size*cellWidth+1))
	sb.WriteByte('\n')
}

// RenderGrid draws the board with row letters on the left and column
// numbers underneath. Ship cells only show while reveal mode is on.
func RenderGrid(w io.Writer, board *mb.Board) error {
	size := board.Size()
	reveal := board.RevealMode()

	var sb strings.Builder
	for row := 0; row < size; row++ {
		writeLine(&sb, size)
		sb.WriteByte(byte('A' + row))
		sb.WriteByte(' ')
		for col := 0; col < size; col++ {
			state, err := board.CellState(mb.NewCoordinates(row, col))
			if err != nil {
				return err
			}
			sb.WriteString("| ")
			sb.WriteByte(cellIcon(state, reveal))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}

	writeLine(&sb, size)
	sb.WriteString("   ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&sb, " %d  ", col+1)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
