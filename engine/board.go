// Package engine implements the game state for a four-directional
// falling-block game: a 20x20 board with center spawns, pieces that fall
// toward any of the four edges, horizontal and vertical line clears, and a
// center-pivoted gravity pass that re-settles the board after a clear.
//
// The engine is tick-driven and owns no rendering, input or timing; those
// collaborators drive it through Tick, Rotate and SetDirection and observe it
// through the exported state and the OnBoardChange/OnScoreChange callbacks.
package engine

import (
	"strings"

	"quadtris/cell"
)

const (
	// Width is the number of cells across the board.
	Width = 20
	// Height is the number of cells down the board.
	Height = 20
)

// Board is the grid of locked cells. The zero value is an empty board.
// Board is a value type: assignment copies the whole grid, which is how
// snapshots are handed to the render sink.
type Board struct {
	cells [Width * Height]cell.Tint
}

// At returns the cell at (x, y). Coordinates must be in range.
func (b *Board) At(x, y int) cell.Tint {
	return b.cells[y*Width+x]
}

// Set writes the cell at (x, y). Coordinates must be in range.
func (b *Board) Set(x, y int, t cell.Tint) {
	b.cells[y*Width+x] = t
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = [Width * Height]cell.Tint{}
}

// String renders the board one row per line, '.' for empty cells and the
// tint digit otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if t := b.At(x, y); t == cell.None {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(t))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
