package engine

import (
	"quadtris/cell"
	"quadtris/piece"
)

// Collides reports whether the piece's placement is invalid: any occupied
// cell of its 4x4 shape out of bounds or overlapping a non-empty board cell.
// Pure; used by movement, rotation and spawning.
func (b *Board) Collides(p piece.Piece) bool {
	shape := p.Shape()
	for i := 0; i < 16; i++ {
		if shape&(1<<(15-i)) == 0 {
			continue
		}
		x := p.X + i%4
		y := p.Y + i/4
		if x < 0 || x >= Width || y < 0 || y >= Height || b.At(x, y) != cell.None {
			return true
		}
	}
	return false
}
