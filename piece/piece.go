package piece

import "quadtris/cell"

// Kind is one of the seven tetromino shapes.
type Kind int

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z

	NumKinds = 7
)

// shapes holds each kind's four rotation states as 16-bit masks over a 4x4
// box, read top row first, left to right, most significant bit first.
var shapes = [NumKinds][4]uint16{
	I: {0x0F00, 0x2222, 0x0F00, 0x2222},
	J: {0x8E00, 0x6440, 0x0E20, 0x44C0},
	L: {0x2E00, 0x4460, 0x0E80, 0xC440},
	O: {0x6600, 0x6600, 0x6600, 0x6600},
	S: {0x6C00, 0x4620, 0x6C00, 0x4620},
	T: {0x4E00, 0x4640, 0x0E40, 0x4C40},
	Z: {0xC600, 0x2640, 0xC600, 0x2640},
}

// Direction is the edge a piece falls toward.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right

	NumDirections = 4
)

// Offset returns the one-cell translation for a single fall step.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Down:
		return 0, 1
	case Up:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Piece is the live falling piece. X and Y anchor the top-left corner of its
// 4x4 bounding box on the board.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
	Dir      Direction
}

// Shape returns the occupancy mask for the piece's current rotation.
func (p Piece) Shape() uint16 {
	return shapes[p.Kind][p.Rotation]
}

// Tint is the color the piece locks into the board with.
func (p Piece) Tint() cell.Tint {
	return cell.Tint(p.Kind + 1)
}

// Rotate advances the rotation state one step clockwise. Validity against the
// board is the caller's concern.
func (p *Piece) Rotate() {
	p.Rotation = (p.Rotation + 1) % 4
}
