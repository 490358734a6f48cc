//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"falling-sand/internal/core"
)

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// World is what the HUD needs from the simulation: its size, a parameter
// snapshot and integer setters.
type World interface {
	core.Sim
	core.ParameterControlsProvider
	core.IntParameterSetter
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	world World
	width int
	panel *ebiten.Image
	pixel *ebiten.Image

	controls     []intControl
	status       Status
	panelOffsetX int
}

// NewHUD constructs a HUD for the provided world and panel width. It returns
// nil when the panel is hidden.
func NewHUD(w World, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{world: w, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	for _, ctrl := range w.ParameterControls() {
		if ctrl.Type != core.ParamTypeInt {
			continue
		}
		top := controlsTop + len(h.controls)*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.controls = append(h.controls, intControl{ParameterControl: ctrl, top: top, minus: minus, plus: plus})
	}
	return h
}

// SetStatus replaces the summary drawn below the controls.
func (h *HUD) SetStatus(s Status) {
	if h == nil {
		return
	}
	h.status = s
}

// Update refreshes control values from the world and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	snapshot := h.world.Parameters()
	for i := range h.controls {
		c := &h.controls[i]
		c.refresh(snapshot)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pt.In(c.minus):
			h.adjust(c, -1)
		case pt.In(c.plus):
			h.adjust(c, 1)
		}
	}
}

func (h *HUD) adjust(c *intControl, direction int) {
	if v, ok := c.target(direction); ok && h.world.SetIntParameter(c.Key, v) {
		c.value = v
	}
}

// Draw paints the HUD panel at offsetX, to the right of the grid.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	height := h.world.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.world.Name()+" controls", face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		c := &h.controls[i]
		y := c.top + labelBaseline
		text.Draw(h.panel, c.Label, face, panelPadding, y, textColor)
		value, col := "--", dimColor
		if c.hasValue {
			value, col = strconv.Itoa(c.value), textColor
		}
		x := c.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, x, y, col)
		_, canDec := c.target(-1)
		_, canInc := c.target(1)
		h.drawButton(c.minus, "-", canDec)
		h.drawButton(c.plus, "+", canInc)
	}
	h.drawStatus()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, textColor
	if !enabled {
		bg, fg = disabledColor, dimColor
	}
	h.fillRect(rect, bg)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()+bounds.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	top := controlsTop + len(h.controls)*lineHeight + panelPadding
	for i, line := range h.status.Lines() {
		y := top + (i+1)*statusLine
		text.Draw(h.panel, line[0], face, panelPadding, y, dimColor)
		x := h.width - panelPadding - text.BoundString(face, line[1]).Dx()
		if i == 0 {
			swatch := image.Rect(0, 0, swatchSize, swatchSize).Add(image.Pt(x-buttonGap-swatchSize, y-swatchSize))
			h.fillRect(swatch, h.status.Swatch())
		}
		text.Draw(h.panel, line[1], face, x, y, textColor)
	}
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusLine     = 18
	swatchSize     = 10
	controlsTop    = panelPadding + headerBaseline + 14
)
