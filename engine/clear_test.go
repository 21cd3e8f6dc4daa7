package engine

import (
	"fmt"
	"testing"

	"quadtris/cell"

	"github.com/stretchr/testify/assert"
)

func fillRow(b *Board, y int) {
	for x := 0; x < Width; x++ {
		b.Set(x, y, cell.Red)
	}
}

func fillCol(b *Board, x int) {
	for y := 0; y < Height; y++ {
		b.Set(x, y, cell.Blue)
	}
}

func TestClearRowAmongPartialRows(t *testing.T) {
	g := NewGame(fixedRand(0))
	fillRow(&g.Board, 7)
	for x := 0; x < Width-1; x++ {
		g.Board.Set(x, 6, cell.Green)
		g.Board.Set(x, 8, cell.Green)
	}

	lines, row, col := g.clearLines()
	assert.Equal(t, 1, lines)
	assert.Equal(t, 7, row)
	assert.Equal(t, -1, col)
	for x := 0; x < Width; x++ {
		assert.Equal(t, cell.None, g.Board.At(x, 7))
	}
	assert.Equal(t, cell.Green, g.Board.At(0, 6), "partial rows untouched")
	assert.Equal(t, cell.Green, g.Board.At(0, 8))
}

func TestClearColumn(t *testing.T) {
	g := NewGame(fixedRand(0))
	fillCol(&g.Board, 12)

	lines, row, col := g.clearLines()
	assert.Equal(t, 1, lines)
	assert.Equal(t, -1, row)
	assert.Equal(t, 12, col)
	for y := 0; y < Height; y++ {
		assert.Equal(t, cell.None, g.Board.At(12, y))
	}
}

// TestClearBothAxesPreClear: a full row and a full column share one cell;
// both must be detected against the board as it stood before clearing,
// even though clearing either one first would break the other.
func TestClearBothAxesPreClear(t *testing.T) {
	g := NewGame(fixedRand(0))
	fillRow(&g.Board, 4)
	fillCol(&g.Board, 7)

	lines, row, col := g.clearLines()
	assert.Equal(t, 2, lines)
	assert.Equal(t, 4, row)
	assert.Equal(t, 7, col)
	assert.Equal(t, Board{}, g.Board)
}

func TestClearLastWinsIndices(t *testing.T) {
	g := NewGame(fixedRand(0))
	fillRow(&g.Board, 2)
	fillRow(&g.Board, 6)

	lines, row, col := g.clearLines()
	assert.Equal(t, 2, lines)
	assert.Equal(t, 6, row, "last-scanned full row drives gravity")
	assert.Equal(t, -1, col)
}

func TestScoreTable(t *testing.T) {
	tests := []struct {
		lines int
		score int
	}{
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lines", tt.lines), func(t *testing.T) {
			g := NewGame(fixedRand(0))
			g.applyScore(tt.lines)
			assert.Equal(t, tt.score, g.Score)
		})
	}
}

func TestScoreManyLines(t *testing.T) {
	// Beyond four simultaneous lines the table caps at the four-line award.
	g := NewGame(fixedRand(0))
	g.applyScore(5)
	assert.Equal(t, 800, g.Score)
}

func TestScoresAccumulate(t *testing.T) {
	g := NewGame(fixedRand(0))
	g.applyScore(1)
	g.applyScore(2)
	assert.Equal(t, 400, g.Score)
}

func TestFallPeriodFormula(t *testing.T) {
	g := NewGame(fixedRand(0))
	g.applyScore(1)
	// The decrease uses the score after the award: 100 * 400 * 1.
	assert.Equal(t, StartFallPeriod-100*400*1, g.FallPeriod)

	g.applyScore(2)
	assert.Equal(t, StartFallPeriod-100*400*1-400*400*2, g.FallPeriod)
}

func TestFallPeriodFloor(t *testing.T) {
	g := NewGame(fixedRand(0))
	g.FallPeriod = MinFallPeriod + 1
	g.applyScore(1)
	assert.Equal(t, MinFallPeriod, g.FallPeriod, "decrease clamps at the floor")

	g.applyScore(4)
	assert.Equal(t, MinFallPeriod, g.FallPeriod, "no further decrease at the floor")
}

// TestFallPeriodLateGameJump documents the formula's late-game behavior: the
// decrease scales with the running score, so a mid-game clear can jump the
// period straight to the floor. Deliberately preserved, not smoothed.
func TestFallPeriodLateGameJump(t *testing.T) {
	g := NewGame(fixedRand(0))
	g.Score = 2000
	g.applyScore(1)
	assert.Equal(t, 2100, g.Score)
	assert.Equal(t, MinFallPeriod, g.FallPeriod, "2100*400 exceeds the whole starting period")
}

func TestScoreChangeCallback(t *testing.T) {
	g := NewGame(fixedRand(0))
	var got []int
	g.OnScoreChange = func(s int) { got = append(got, s) }
	g.applyScore(1)
	g.applyScore(1)
	assert.Equal(t, []int{100, 200}, got)
}
