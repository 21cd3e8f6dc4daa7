package engine

import "quadtris/cell"

// lineScore is the score awarded per number of lines cleared in one pass.
// Rows and columns count together. Five or more score the same as four.
var lineScore = map[int]int{
	1: 100,
	2: 300,
	3: 500,
	4: 800,
}

// speedStep scales how much each clear shrinks the fall period.
const speedStep = 400

// clearLines scans the board once for complete rows and columns. Both axes
// are judged against the board as it stood before this pass, then every
// complete line is emptied. It returns the total number of lines cleared and
// the last-scanned complete row and column index, -1 where an axis had none;
// those indices pick the gravity rules.
func (g *Game) clearLines() (lines, lastRow, lastCol int) {
	lastRow, lastCol = -1, -1

	var fullRows, fullCols []int
	for y := 0; y < Height; y++ {
		complete := true
		for x := 0; x < Width; x++ {
			if g.Board.At(x, y) == cell.None {
				complete = false
				break
			}
		}
		if complete {
			fullRows = append(fullRows, y)
			lastRow = y
			lines++
		}
	}
	for x := 0; x < Width; x++ {
		complete := true
		for y := 0; y < Height; y++ {
			if g.Board.At(x, y) == cell.None {
				complete = false
				break
			}
		}
		if complete {
			fullCols = append(fullCols, x)
			lastCol = x
			lines++
		}
	}

	for _, y := range fullRows {
		for x := 0; x < Width; x++ {
			g.Board.Set(x, y, cell.None)
		}
	}
	for _, x := range fullCols {
		for y := 0; y < Height; y++ {
			g.Board.Set(x, y, cell.None)
		}
	}
	return lines, lastRow, lastCol
}

// applyScore adds the clear's score and shrinks the fall period by
// score*speedStep per line cleared. Once the period is at or below
// MinFallPeriod it never shrinks again.
func (g *Game) applyScore(lines int) {
	n := lines
	if n > 4 {
		n = 4
	}
	g.Score += lineScore[n]

	if g.FallPeriod > MinFallPeriod {
		g.FallPeriod -= g.Score * speedStep * lines
		if g.FallPeriod < MinFallPeriod {
			g.FallPeriod = MinFallPeriod
		}
	}

	if g.OnScoreChange != nil {
		g.OnScoreChange(g.Score)
	}
}
