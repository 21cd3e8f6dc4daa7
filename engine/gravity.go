package engine

import "quadtris/cell"

// settle re-compacts the board after a clear, pivoting on the board center.
// A cleared row pulls the affected half vertically: the top half falls
// upward, the bottom half falls downward. A cleared column pulls the
// affected half horizontally, top and bottom quadrants independently: the
// right half falls rightward, the left half leftward. Each full sweep moves
// every eligible cell at most one step; sweeps repeat until one moves
// nothing. Every moving sweep is reported as one board change, which is the
// animation frame boundary for the render sink.
//
// Termination: a cell only ever moves along one axis, one step at a time,
// toward its half's edge, and never back; the summed distance to the edges
// strictly decreases every moving sweep and is bounded below by zero.
func (g *Game) settle(clearedRow, clearedCol int) {
	centerX := Width / 2
	centerY := Height / 2

	for {
		moves := 0

		if clearedRow >= 0 {
			if clearedRow < centerY {
				// Top half falls upward.
				for y := 1; y < centerY; y++ {
					for x := 0; x < Width; x++ {
						if g.Board.At(x, y) != cell.None && g.Board.At(x, y-1) == cell.None {
							g.Board.Set(x, y-1, g.Board.At(x, y))
							g.Board.Set(x, y, cell.None)
							moves++
						}
					}
				}
			} else {
				// Bottom half falls downward, scanned bottom-up so moved
				// cells don't overwrite not-yet-moved ones.
				for y := Height - 2; y >= centerY; y-- {
					for x := 0; x < Width; x++ {
						if g.Board.At(x, y) != cell.None && g.Board.At(x, y+1) == cell.None {
							g.Board.Set(x, y+1, g.Board.At(x, y))
							g.Board.Set(x, y, cell.None)
							moves++
						}
					}
				}
			}
		}

		if clearedCol >= 0 {
			if clearedCol >= centerX {
				// Right half falls rightward, top then bottom quadrant.
				for x := Width - 2; x >= centerX; x-- {
					for y := 0; y < centerY; y++ {
						if g.Board.At(x, y) != cell.None && g.Board.At(x+1, y) == cell.None {
							g.Board.Set(x+1, y, g.Board.At(x, y))
							g.Board.Set(x, y, cell.None)
							moves++
						}
					}
				}
				for x := Width - 2; x >= centerX; x-- {
					for y := centerY; y < Height; y++ {
						if g.Board.At(x, y) != cell.None && g.Board.At(x+1, y) == cell.None {
							g.Board.Set(x+1, y, g.Board.At(x, y))
							g.Board.Set(x, y, cell.None)
							moves++
						}
					}
				}
			} else {
				// Left half falls leftward, top then bottom quadrant.
				for x := 1; x < centerX; x++ {
					for y := 0; y < centerY; y++ {
						if g.Board.At(x, y) != cell.None && g.Board.At(x-1, y) == cell.None {
							g.Board.Set(x-1, y, g.Board.At(x, y))
							g.Board.Set(x, y, cell.None)
							moves++
						}
					}
				}
				for x := 1; x < centerX; x++ {
					for y := centerY; y < Height; y++ {
						if g.Board.At(x, y) != cell.None && g.Board.At(x-1, y) == cell.None {
							g.Board.Set(x-1, y, g.Board.At(x, y))
							g.Board.Set(x, y, cell.None)
							moves++
						}
					}
				}
			}
		}

		if moves == 0 {
			return
		}
		g.boardChanged()
	}
}
