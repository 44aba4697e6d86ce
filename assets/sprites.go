package assets

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/automoto/puffball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	sheet      *ebiten.Image
	sheetOnce  sync.Once
	frameCache = map[int]*ebiten.Image{}
)

var (
	pink      = color.RGBA{R: 246, G: 148, B: 182, A: 255}
	pinkDark  = color.RGBA{R: 222, G: 96, B: 140, A: 255}
	shoeRed   = color.RGBA{R: 204, G: 40, B: 72, A: 255}
	ink       = color.RGBA{R: 36, G: 20, B: 40, A: 255}
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	windWhite = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	starGold  = color.RGBA{R: 255, G: 214, B: 64, A: 255}
	guyOrange = color.RGBA{R: 236, G: 140, B: 60, A: 255}
	guyMask   = color.RGBA{R: 250, G: 232, B: 196, A: 255}
	birdBlue  = color.RGBA{R: 92, G: 148, B: 236, A: 255}
	birdBeak  = color.RGBA{R: 250, G: 190, B: 60, A: 255}
	flameRed  = color.RGBA{R: 232, G: 64, B: 40, A: 255}
	flameCore = color.RGBA{R: 255, G: 186, B: 60, A: 255}
)

// SheetFrame returns the 16x16 cell at index idx of the sprite sheet, or nil
// when idx is outside the sheet.
func SheetFrame(idx int) *ebiten.Image {
	if idx < 0 || idx >= config.SheetColumns*config.SheetRows {
		return nil
	}
	if img, ok := frameCache[idx]; ok {
		return img
	}

	sheetOnce.Do(func() { sheet = paintSheet() })
	x, y := cellOrigin(idx)
	cell := config.SheetCell
	img := sheet.SubImage(image.Rect(x, y, x+cell, y+cell)).(*ebiten.Image)
	frameCache[idx] = img
	return img
}

func cellOrigin(idx int) (x, y int) {
	return (idx % config.SheetColumns) * config.SheetCell, (idx / config.SheetColumns) * config.SheetCell
}

// paintSheet draws every sheet cell the animations reference.
func paintSheet() *ebiten.Image {
	cell := config.SheetCell
	img := ebiten.NewImage(config.SheetColumns*cell, config.SheetRows*cell)

	at := func(idx int) (float32, float32) {
		x, y := cellOrigin(idx)
		return float32(x), float32(y)
	}

	drawPuff(img, at, 0, puffIdle)
	drawPuff(img, at, 1, puffInhaling)
	drawPuff(img, at, 2, puffFull)
	for i := 0; i < 6; i++ {
		drawWind(img, at, 3+i, i)
	}
	drawStar(img, at, 9)
	drawGuy(img, at, 18, false)
	drawGuy(img, at, 19, true)
	drawBird(img, at, 27, true)
	drawBird(img, at, 28, false)
	drawFlame(img, at, 36, 0)
	drawFlame(img, at, 37, 1)
	return img
}

type cellFunc func(idx int) (float32, float32)

type puffPose int

const (
	puffIdle puffPose = iota
	puffInhaling
	puffFull
)

func drawPuff(img *ebiten.Image, at cellFunc, idx int, pose puffPose) {
	ox, oy := at(idx)
	r := float32(6.5)
	if pose == puffFull {
		r = 7.5
	}
	vector.DrawFilledCircle(img, ox+5, oy+14, 2.5, shoeRed, true)
	vector.DrawFilledCircle(img, ox+11, oy+14, 2.5, shoeRed, true)
	vector.DrawFilledCircle(img, ox+8, oy+8.5, r, pink, true)
	vector.DrawFilledCircle(img, ox+12, oy+10, 1.2, pinkDark, true)

	vector.FillRect(img, ox+9, oy+4, 1, 3, ink, false)
	vector.FillRect(img, ox+11, oy+4, 1, 3, ink, false)

	switch pose {
	case puffInhaling:
		vector.DrawFilledCircle(img, ox+12.5, oy+10, 2.5, ink, true)
	case puffFull:
		vector.DrawFilledCircle(img, ox+4, oy+10, 1.5, pinkDark, true)
	default:
		vector.FillRect(img, ox+10, oy+9, 2, 1, ink, false)
	}
}

// drawWind draws one frame of the inhale swirl, drifting toward the left
// edge of the cell.
func drawWind(img *ebiten.Image, at cellFunc, idx, step int) {
	ox, oy := at(idx)
	for j := 0; j < 3; j++ {
		x := 14 - float32((step*3+j*5)%14)
		y := 4 + float32(j)*4
		r := 0.8 + x/10
		vector.DrawFilledCircle(img, ox+x, oy+y, r, windWhite, true)
	}
}

func drawStar(img *ebiten.Image, at cellFunc, idx int) {
	ox, oy := at(idx)
	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + float64(i)*2*math.Pi/5
		x := 8 + 4.5*float32(math.Cos(a))
		y := 8 + 4.5*float32(math.Sin(a))
		vector.DrawFilledCircle(img, ox+x, oy+y, 2, starGold, true)
	}
	vector.DrawFilledCircle(img, ox+8, oy+8, 3.5, starGold, true)
	vector.DrawFilledCircle(img, ox+7, oy+7, 1, white, true)
}

func drawGuy(img *ebiten.Image, at cellFunc, idx int, stride bool) {
	ox, oy := at(idx)
	left, right := float32(5), float32(11)
	if stride {
		left, right = 4, 12
	}
	vector.DrawFilledCircle(img, ox+left, oy+14, 2, ink, true)
	vector.DrawFilledCircle(img, ox+right, oy+14, 2, ink, true)
	vector.DrawFilledCircle(img, ox+8, oy+8.5, 6, guyOrange, true)
	vector.DrawFilledCircle(img, ox+6, oy+8, 3.5, guyMask, true)
	vector.FillRect(img, ox+4, oy+6, 1, 3, ink, false)
	vector.FillRect(img, ox+7, oy+6, 1, 3, ink, false)
}

func drawBird(img *ebiten.Image, at cellFunc, idx int, wingUp bool) {
	ox, oy := at(idx)
	vector.DrawFilledCircle(img, ox+8, oy+9, 5, birdBlue, true)
	vector.DrawFilledCircle(img, ox+3, oy+9, 1.5, birdBeak, true)
	vector.FillRect(img, ox+5, oy+7, 1, 2, ink, false)
	if wingUp {
		vector.FillRect(img, ox+8, oy+2, 5, 4, birdBlue, false)
	} else {
		vector.FillRect(img, ox+8, oy+11, 5, 4, birdBlue, false)
	}
}

func drawFlame(img *ebiten.Image, at cellFunc, idx, phase int) {
	ox, oy := at(idx)
	top := float32(5)
	if phase == 1 {
		top = 3.5
	}
	vector.DrawFilledCircle(img, ox+8, oy+10, 5.5, flameRed, true)
	vector.DrawFilledCircle(img, ox+8, oy+top+1, 3, flameRed, true)
	vector.DrawFilledCircle(img, ox+8, oy+11, 3, flameCore, true)
	vector.FillRect(img, ox+6, oy+9, 1, 2, ink, false)
	vector.FillRect(img, ox+9, oy+9, 1, 2, ink, false)
}
