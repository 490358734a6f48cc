package sand

import (
	"image/color"
	"strconv"

	"falling-sand/internal/core"
)

// World owns the grid and everything needed to advance it. It implements
// core.Sim so the window and terminal front ends can drive it.
type World struct {
	cfg Config

	grid    *Grid
	table   *Table
	stepper *Stepper
	rng     *core.RNG
	display *core.ByteGrid

	tick int64
}

// New returns a world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// grid starts as the configured scene built from the config seed.
func NewWithConfig(cfg Config) *World {
	if cfg.Table == nil {
		cfg.Table = DefaultTable()
	}
	grid := NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	w := &World{
		cfg:     cfg,
		grid:    grid,
		table:   cfg.Table,
		stepper: NewStepper(cfg.Table, cfg.Physics),
		rng:     core.NewRNG(cfg.Seed),
		display: core.NewByteGrid(grid.Width(), grid.Height()),
	}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Cells exposes the material ordinals captured at the end of the last tick.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Palette exposes the display colors indexed by material ordinal.
func (w *World) Palette() []color.RGBA { return w.table.Palette() }

// Grid exposes the live grid.
func (w *World) Grid() *Grid { return w.grid }

// Table exposes the material table.
func (w *World) Table() *Table { return w.table }

// Config returns the configuration the world was built with, including any
// parameter changes made since.
func (w *World) Config() Config { return w.cfg }

// Tick returns the number of steps taken since the last reset.
func (w *World) Tick() int64 { return w.tick }

// Stats reports the stepper outcome counts of the last tick.
func (w *World) Stats() Stats { return w.stepper.LastStats() }

// Census counts cells per material.
func (w *World) Census() [MaterialCount]int { return w.grid.Census() }

// Reset refills the grid with air and rebuilds the configured scene. A zero
// seed reuses the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.grid.Fill(AirCell())
	buildScene(w.grid, w.cfg.Scene)
	w.tick = 0
	w.refreshDisplay()
}

// Step advances the world by one tick, captures the display snapshot and then
// clears the processed flags for the next tick.
func (w *World) Step() {
	w.stepper.Step(w.grid, w.rng)
	w.tick++
	w.refreshDisplay()
	w.grid.ResetProcessed()
}

// Apply executes a paint command. Painted cells become visible immediately.
func (w *World) Apply(cmd PaintCommand) {
	w.grid.Apply(cmd)
	w.refreshDisplay()
}

// Paint applies the brush footprint centered at p.
func (w *World) Paint(b Brush, p Point, mode PaintMode, m Material) {
	for _, cmd := range b.Commands(p, mode, m) {
		w.grid.Apply(cmd)
	}
	w.refreshDisplay()
}

// MaterialAt returns the material at p and whether p is in range.
func (w *World) MaterialAt(p Point) (Material, bool) {
	c := w.grid.At(p.X, p.Y)
	if c == nil {
		return Air, false
	}
	return c.Material, true
}

func (w *World) refreshDisplay() {
	w.grid.Materials(w.display.Cells())
}

// Parameters reports the current tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.stepper.Physics()
	materials := make([]core.Parameter, 0, MaterialCount)
	for m := Material(0); m < MaterialCount; m++ {
		props := w.table.Properties(m)
		materials = append(materials, core.Parameter{
			Key:         "density_" + m.String(),
			Label:       m.String() + " density",
			Type:        core.ParamTypeFloat,
			Value:       strconv.FormatFloat(props.Density, 'f', -1, 64),
			Description: props.Behavior.String(),
		})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.Width()),
				intParam("h", "Height", w.grid.Height()),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(w.cfg.Seed, 10)},
				{Key: "scene", Label: "Scene", Type: core.ParamTypeString, Value: string(w.cfg.Scene)},
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				intParam("gravity", "Gravity", p.Gravity),
				intParam("max_y_velocity", "Max fall speed", p.MaxVelocityY),
				intParam("min_y_velocity", "Min fall speed", p.MinVelocityY),
				{Key: "tie_break", Label: "Tie break", Type: core.ParamTypeString, Value: p.TieBreak.String()},
				{Key: "reverse_slip", Label: "Reverse slip", Type: core.ParamTypeBool, Value: strconv.FormatBool(p.ReverseSlip)},
			},
		},
		{Name: "Materials", Params: materials},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gravity", Label: "Gravity", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "max_y_velocity", Label: "Max fall speed", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 32, HasMin: true, HasMax: true},
		{Key: "min_y_velocity", Label: "Min fall speed", Type: core.ParamTypeInt, Step: 1, Min: -32, Max: 0, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. It reports whether key is known.
func (w *World) SetIntParameter(key string, value int) bool {
	p := w.stepper.Physics()
	switch key {
	case "gravity":
		p.Gravity = value
	case "max_y_velocity":
		p.MaxVelocityY = max(value, p.MinVelocityY)
	case "min_y_velocity":
		p.MinVelocityY = min(value, p.MaxVelocityY)
	default:
		return false
	}
	w.stepper.SetPhysics(p)
	w.cfg.Physics = w.stepper.Physics()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
