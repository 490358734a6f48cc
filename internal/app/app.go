//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"falling-sand/internal/render"
	"falling-sand/internal/sand"
	"falling-sand/internal/ui"
)

var background = color.RGBA{R: 93, G: 88, B: 90, A: 255}

var keyNames = map[ebiten.Key]string{
	ebiten.KeyDigit1:         "1",
	ebiten.KeyDigit2:         "2",
	ebiten.KeyDigit3:         "3",
	ebiten.KeyDigit4:         "4",
	ebiten.KeyNumpad1:        "1",
	ebiten.KeyNumpad2:        "2",
	ebiten.KeyNumpad3:        "3",
	ebiten.KeyNumpad4:        "4",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "+",
	ebiten.KeyNumpadSubtract: "-",
	ebiten.KeyTab:            KeyTab,
	ebiten.KeySpace:          KeySpace,
	ebiten.KeyN:              "n",
	ebiten.KeyR:              "r",
	ebiten.KeyS:              "s",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         KeyEsc,
}

// Game adapts a sand session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int

	keys []ebiten.Key
}

// New constructs a Game for the provided session.
func New(s *Session, scale, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	w := s.World()
	size := w.Size()
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(size.W, size.H, w.Palette(), background),
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(w, hudWidth),
		scale:    scale,
		hudWidth: max(hudWidth, 0),
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.session.Handle(g.readInput()) {
		return ebiten.Termination
	}
	if g.hud != nil {
		g.hud.SetStatus(g.status())
		g.hud.Update(g.gridWidth())
	}
	g.session.Advance(1)
	return nil
}

func (g *Game) readInput() InputState {
	var in InputState
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if name, ok := keyNames[k]; ok {
			in.Keys = append(in.Keys, name)
		}
	}
	_, wy := ebiten.Wheel()
	switch {
	case wy > 0:
		in.Wheel = 1
	case wy < 0:
		in.Wheel = -1
	}

	mx, my := ebiten.CursorPosition()
	size := g.session.World().Size()
	if mx >= 0 && my >= 0 && mx < g.gridWidth() && my < size.H*g.scale {
		in.Cursor = sand.Point{X: mx / g.scale, Y: my / g.scale}
		in.OnGrid = true
	}
	in.Primary = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Secondary = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.Middle = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)
	return in
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w := g.session.World()
	g.painter.Blit(screen, w.Cells(), g.scale)
	if cursor, ok := g.session.Cursor(); ok {
		g.overlay.Draw(screen, cursor, w.Size())
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.gridWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.World().Size()
	return g.gridWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) gridWidth() int { return g.session.World().Size().W * g.scale }

func (g *Game) status() ui.Status {
	w := g.session.World()
	return ui.Status{
		Material: g.session.Input().Material(),
		Brush:    g.session.Input().Brush(),
		Tick:     w.Tick(),
		Paused:   g.session.Paused(),
		Stats:    w.Stats(),
		Palette:  w.Palette(),
	}
}

// Run opens the window and blocks until it is closed.
func Run(s *Session, cfg *Config, logger *log.Logger) error {
	game := New(s, cfg.Scale, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("falling-sand %dx%d", s.World().Size().W, s.World().Size().H))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	logger.Info("opening window", "width", w, "height", h, "tps", cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
