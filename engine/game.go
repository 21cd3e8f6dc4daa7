package engine

import (
	"quadtris/piece"
)

const (
	// StartFallPeriod is the fall period a fresh session begins with, in
	// abstract timer units. The front end maps it to real time.
	StartFallPeriod = 899999
	// MinFallPeriod is the floor below which clears stop speeding the game up.
	MinFallPeriod = 1000
)

// Phase is where the session is in its lifecycle. Between ticks a live
// session is always Falling; the intermediate phases are passed through
// within a single Tick and are visible to callbacks fired during it.
type Phase int

const (
	Spawning Phase = iota
	Falling
	Locking
	Clearing
	Settling
	GameOver
)

// Game is one session of the four-directional game. It owns the board, the
// live piece, the score and the fall period, and mutates them only through
// Tick, Rotate, SetDirection and Reset.
type Game struct {
	Board Board
	// Piece is the live falling piece. Meaningless once Phase is GameOver.
	Piece piece.Piece
	Score int
	// FallPeriod is the desired interval between movement ticks, in the same
	// units as StartFallPeriod. Clears shrink it, never below MinFallPeriod.
	FallPeriod int
	Phase      Phase

	// OnBoardChange, if set, is called with a snapshot of the board after a
	// piece locks, after lines clear, and after every gravity sweep that
	// moved at least one cell.
	OnBoardChange func(Board)
	// OnScoreChange, if set, is called with the new score after every clear
	// that scored.
	OnScoreChange func(int)

	rand func() int
}

// NewGame starts a session with an empty board and a freshly spawned piece.
// rand supplies non-negative draws for piece kind and direction.
func NewGame(rand func() int) *Game {
	g := &Game{rand: rand}
	g.Reset()
	return g
}

// Reset reinitializes the session: empty board, score 0, default fall
// period, new spawn. Callbacks and the random source are kept.
func (g *Game) Reset() {
	g.Board.Clear()
	g.Score = 0
	g.FallPeriod = StartFallPeriod
	g.spawn()
}

// Over reports whether the session has reached its terminal state.
func (g *Game) Over() bool {
	return g.Phase == GameOver
}

// SetDirection points the live piece at a new fall edge. The change is not
// validated here; the next Tick validates the move it produces.
func (g *Game) SetDirection(d piece.Direction) {
	if g.Phase != Falling || g.Piece.Dir == d {
		return
	}
	g.Piece.Dir = d
}

// Rotate advances the live piece one rotation step, reverting if the rotated
// shape doesn't fit at the current position. No wall kicks.
func (g *Game) Rotate() {
	if g.Phase != Falling {
		return
	}
	old := g.Piece.Rotation
	g.Piece.Rotate()
	if g.Board.Collides(g.Piece) {
		g.Piece.Rotation = old
	}
}

// Tick advances the piece one cell along its direction. A rejected move is
// the lock trigger: the move is undone and the lock/clear/settle/respawn
// sequence runs to completion before Tick returns.
func (g *Game) Tick() {
	if g.Phase != Falling {
		return
	}

	dx, dy := g.Piece.Dir.Offset()
	g.Piece.X += dx
	g.Piece.Y += dy
	if !g.Board.Collides(g.Piece) {
		return
	}
	g.Piece.X -= dx
	g.Piece.Y -= dy

	g.Phase = Locking
	g.lock()
	g.boardChanged()

	g.Phase = Clearing
	lines, row, col := g.clearLines()
	if lines > 0 {
		g.boardChanged()
		g.applyScore(lines)
		g.Phase = Settling
		g.settle(row, col)
	}

	g.Phase = Spawning
	g.spawn()
}

// lock writes the live piece's cells into the board with its color tag.
func (g *Game) lock() {
	shape := g.Piece.Shape()
	for i := 0; i < 16; i++ {
		if shape&(1<<(15-i)) == 0 {
			continue
		}
		g.Board.Set(g.Piece.X+i%4, g.Piece.Y+i/4, g.Piece.Tint())
	}
}

// spawn replaces the live piece: random kind, rotation 0, random direction,
// 4x4 box centered on the board. A spawn that already collides is the one
// terminal condition.
func (g *Game) spawn() {
	g.Piece = piece.Piece{
		Kind: piece.Kind(g.rand() % piece.NumKinds),
		X:    Width/2 - 2,
		Y:    Height/2 - 2,
		Dir:  piece.Direction(g.rand() % piece.NumDirections),
	}
	if g.Board.Collides(g.Piece) {
		g.Phase = GameOver
		return
	}
	g.Phase = Falling
}

func (g *Game) boardChanged() {
	if g.OnBoardChange != nil {
		g.OnBoardChange(g.Board)
	}
}
