package cell

import "image/color"

// Tint identifies what occupies a board cell: nothing, one of the seven
// piece colors, or the border.
type Tint uint8

const (
	None Tint = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
	Border
)

var nrgba = map[Tint]color.NRGBA{
	None:   {R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	Cyan:   {R: 0x00, G: 0xdd, B: 0xff, A: 0xff},
	Blue:   {R: 0x20, G: 0x40, B: 0xff, A: 0xff},
	Orange: {R: 0xff, G: 0x90, B: 0x00, A: 0xff},
	Yellow: {R: 0xff, G: 0xe0, B: 0x00, A: 0xff},
	Green:  {R: 0x20, G: 0xd0, B: 0x30, A: 0xff},
	Purple: {R: 0xa0, G: 0x40, B: 0xff, A: 0xff},
	Red:    {R: 0xff, G: 0x30, B: 0x20, A: 0xff},
	Border: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

func (t Tint) NRGBA() color.NRGBA {
	if c, ok := nrgba[t]; ok {
		return c
	}
	return nrgba[None]
}
