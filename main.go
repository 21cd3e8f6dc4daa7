package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"quadtris/cell"
	"quadtris/engine"
	"quadtris/piece"
	"quadtris/sprite"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	// cellSize is the size of each cell in pixels
	cellSize = 32
	// sidebarCells is the width of the score sidebar, in cells
	sidebarCells = 8
	// periodPerTick converts the engine's fall period into ebiten ticks:
	// one cell of movement every FallPeriod/periodPerTick ticks. At the
	// starting period and 60 TPS that is roughly two cells per second.
	periodPerTick = 30000
	// settleTicks is how long each queued board snapshot stays on screen
	// while the lock/clear/settle animation plays back.
	settleTicks = 4
)

// directionKeys is the direction selector: arrow keys point the piece at a
// new fall edge.
var directionKeys = map[ebiten.Key]piece.Direction{
	ebiten.KeyDown:  piece.Down,
	ebiten.KeyUp:    piece.Up,
	ebiten.KeyLeft:  piece.Left,
	ebiten.KeyRight: piece.Right,
}

type Game struct {
	session *engine.Game
	// frames is the queue of board snapshots reported by the engine during
	// lock/clear/settle. While any are pending they play back one per
	// settleTicks and normal ticking pauses.
	frames []engine.Board
	// frameTicks counts ticks the head snapshot has been on screen
	frameTicks int
	// ticksSinceFall counts ticks since the piece last fell
	ticksSinceFall int
	// scoreFlash is the number of ticks left to highlight the score after it
	// changed
	scoreFlash int
	// ScreenWidth is the width of the screen in pixels
	ScreenWidth int
	// ScreenHeight is the height of the screen in pixels
	ScreenHeight int
}

func NewGame() *Game {
	g := &Game{}
	g.session = engine.NewGame(func() int { return rand.Intn(1 << 15) })
	g.session.OnBoardChange = func(b engine.Board) {
		g.frames = append(g.frames, b)
	}
	g.session.OnScoreChange = func(int) {
		g.scoreFlash = 30
	}
	return g
}

func (g *Game) Reset() {
	g.session.Reset()
	g.frames = nil
	g.frameTicks = 0
	g.ticksSinceFall = 0
	g.scoreFlash = 0
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
		return nil
	}

	if g.scoreFlash > 0 {
		g.scoreFlash--
	}

	if len(g.frames) > 0 {
		g.frameTicks++
		if g.frameTicks >= settleTicks {
			g.frameTicks = 0
			g.frames = g.frames[1:]
		}
		return nil
	}

	if g.session.Over() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Rotate()
	}

	for key, dir := range directionKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.session.SetDirection(dir)
		}
	}

	g.ticksSinceFall++
	if g.ticksSinceFall >= fallTicks(g.session.FallPeriod) {
		g.ticksSinceFall = 0
		g.session.Tick()
	}
	return nil
}

// fallTicks is the number of ebiten ticks between automatic falls for the
// given fall period.
func fallTicks(period int) int {
	t := period / periodPerTick
	if t < 1 {
		t = 1
	}
	return t
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBorder(screen)

	board := &g.session.Board
	if len(g.frames) > 0 {
		board = &g.frames[0]
	}
	g.drawBoard(screen, board)

	if len(g.frames) == 0 && !g.session.Over() {
		g.drawPiece(screen)
	}

	g.drawScore(screen)

	if g.session.Over() && len(g.frames) == 0 {
		g.drawGameOver(screen)
	}
}

func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	g.ScreenWidth = (engine.Width + 2 + sidebarCells) * cellSize
	g.ScreenHeight = (engine.Height + 2) * cellSize
	return g.ScreenWidth, g.ScreenHeight
}

// drawBorder draws the white ring around the board well. The well occupies
// grid cells [0, Width)x[0, Height); the ring sits at -1 and Width/Height.
func (g *Game) drawBorder(screen *ebiten.Image) {
	for x := -1; x <= engine.Width; x++ {
		drawCell(screen, sprite.Cell, x, -1, cell.Border)
		drawCell(screen, sprite.Cell, x, engine.Height, cell.Border)
	}
	for y := 0; y < engine.Height; y++ {
		drawCell(screen, sprite.Cell, -1, y, cell.Border)
		drawCell(screen, sprite.Cell, engine.Width, y, cell.Border)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, board *engine.Board) {
	for y := 0; y < engine.Height; y++ {
		for x := 0; x < engine.Width; x++ {
			if t := board.At(x, y); t != cell.None {
				drawCell(screen, sprite.Cell, x, y, t)
			} else {
				// Back is pre-shaded; the white tint leaves it unchanged.
				drawCell(screen, sprite.Back, x, y, cell.Border)
			}
		}
	}
}

func (g *Game) drawPiece(screen *ebiten.Image) {
	p := g.session.Piece
	shape := p.Shape()
	for i := 0; i < 16; i++ {
		if shape&(1<<(15-i)) == 0 {
			continue
		}
		drawCell(screen, sprite.Cell, p.X+i%4, p.Y+i/4, p.Tint())
	}
}

func (g *Game) drawScore(screen *ebiten.Image) {
	x := (engine.Width + 3) * cellSize
	scoreColor := color.Color(color.White)
	if g.scoreFlash > 0 {
		scoreColor = color.NRGBA{R: 0xff, G: 0xe0, B: 0x00, A: 0xff}
	}
	drawText(screen, sprite.Regular, "Score", 32, x, 2*cellSize, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("%d", g.session.Score), 32, x, 3*cellSize+8, scoreColor)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	cx := (engine.Width + 2) * cellSize / 2
	cy := g.ScreenHeight / 2
	red := color.NRGBA{R: 0xff, G: 0x30, B: 0x20, A: 0xff}
	drawText(screen, sprite.Regular, "GAME OVER", 48, cx-128, cy-24, red)
	drawText(screen, sprite.Regular, fmt.Sprintf("Final score: %d", g.session.Score), 32, cx-112, cy+24, color.White)
	drawText(screen, sprite.Regular, "Press R to restart", 24, cx-96, cy+64, color.White)
}

// drawCell draws one tinted block at board grid coordinates; the border ring
// at -1 and Width/Height maps onto the pixel margin around the well.
func drawCell(screen, img *ebiten.Image, x, y int, tint cell.Tint) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.GeoM.Scale(float64(cellSize)/float64(img.Bounds().Dx()), float64(cellSize)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64((x+1)*cellSize), float64((y+1)*cellSize))
	screen.DrawImage(img, &op)
}

var fontFaceCache = make(map[*opentype.Font]map[float64]font.Face)

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	if _, ok := fontFaceCache[f]; !ok {
		fontFaceCache[f] = make(map[float64]font.Face)
	}
	if _, ok := fontFaceCache[f][size]; !ok {
		var err error
		fontFaceCache[f][size], err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			log.Fatalf("failed to create face: %v", err)
		}
	}
	text.Draw(img, t, fontFaceCache[f][size], x, y, c)
}

func main() {
	log.SetFlags(0)
	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}

	ebiten.SetWindowTitle("Quadtris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(960, 704)
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
}
