//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"falling-sand/internal/core"
	"falling-sand/internal/sand"
)

var cursorColor = color.RGBA{R: 240, G: 240, B: 250, A: 150}

// Overlay draws the brush outline on top of the grid.
type Overlay struct {
	scale int
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the cursor outline onto the provided screen. Outline cells
// outside the grid are skipped.
func (o *Overlay) Draw(screen *ebiten.Image, cursor sand.Cursor, size core.Size) {
	if size.W <= 0 || size.H <= 0 {
		return
	}
	s := float64(o.scale)
	for _, p := range cursor.Outline() {
		if p.X < 0 || p.Y < 0 || p.X >= size.W || p.Y >= size.H {
			continue
		}
		o.drawCell(screen, float64(p.X)*s, float64(p.Y)*s, s, cursorColor)
	}
}

func (o *Overlay) drawCell(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
