package sprite

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const size = 16

var (
	// Cell is a grayscale raised block, tinted per piece color at draw time.
	Cell *ebiten.Image
	// Back is a pre-shaded recessed block for empty board cells.
	Back *ebiten.Image
)

func Load() error {
	Cell = bevel(0xcc, 0xff, 0x55)
	Back = bevel(0x38, 0x50, 0x18)
	return loadFonts()
}

// bevel builds a block with a 2px light top/left edge and a 2px dark
// bottom/right edge.
func bevel(base, light, dark uint8) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := base
			if x <= 1 || y <= 1 {
				v = light
			}
			if x >= size-2 || y >= size-2 {
				v = dark
			}
			img.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return img
}
