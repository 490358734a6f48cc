package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"falling-sand/internal/sand"
)

// Session owns a world and the interactive state around it. Both front ends
// feed it input and ask it to advance; it never runs its own loop.
type Session struct {
	world  *sand.World
	input  *InputMapper
	logger *log.Logger

	seed     int64
	paused   bool
	tickOnce bool

	cursor sand.Point
	onGrid bool

	now func() time.Time
}

// NewSession wraps w. A nil logger discards output.
func NewSession(w *sand.World, brush sand.Brush, m sand.Material, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		world:  w,
		input:  NewInputMapper(brush, m),
		logger: logger,
		seed:   w.Config().Seed,
		now:    time.Now,
	}
}

// World exposes the simulated world.
func (s *Session) World() *sand.World { return s.world }

// Input exposes the input mapper.
func (s *Session) Input() *InputMapper { return s.input }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// SetPaused suspends or resumes automatic stepping.
func (s *Session) SetPaused(paused bool) { s.paused = paused }

// Seed returns the seed used by the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Cursor returns the brush overlay at the last known pointer position.
func (s *Session) Cursor() (sand.Cursor, bool) {
	return s.input.Brush().Cursor(s.cursor), s.onGrid
}

// Handle maps one frame of input and applies it. It reports whether the user
// asked to quit.
func (s *Session) Handle(in InputState) bool {
	a := s.input.Map(in)
	s.cursor, s.onGrid = in.Cursor, in.OnGrid
	s.Apply(a)
	return a.Quit
}

// Apply executes a set of actions against the world.
func (s *Session) Apply(a Actions) {
	if a.MaterialChanged {
		s.logger.Info("material selected", "material", a.Material)
	}
	if a.BrushChanged {
		s.logger.Debug("brush changed", "radius", a.Brush.Radius, "shape", a.Brush.Shape)
	}
	switch {
	case a.Paint:
		s.world.Paint(a.Brush, a.At, sand.PaintSet, a.Material)
	case a.Erase:
		s.world.Paint(a.Brush, a.At, sand.PaintErase, sand.Air)
	case a.Pick:
		if m, ok := s.world.MaterialAt(a.At); ok && s.input.SetMaterial(m) {
			s.logger.Info("material picked", "material", m, "x", a.At.X, "y", a.At.Y)
		}
	}
	if a.TogglePause {
		s.paused = !s.paused
		s.logger.Debug("pause toggled", "paused", s.paused)
	}
	if a.StepOnce {
		s.tickOnce = true
	}
	if a.Reseed {
		s.Reset(s.now().UnixNano())
	} else if a.Reset {
		s.Reset(s.seed)
	}
}

// Reset rebuilds the world from seed.
func (s *Session) Reset(seed int64) {
	if seed == 0 {
		seed = s.world.Config().Seed
	}
	s.seed = seed
	s.world.Reset(seed)
	s.tickOnce = false
	s.logger.Info("world reset", "seed", seed, "scene", s.world.Config().Scene)
}

// Advance runs up to n ticks. While paused only a pending single step runs.
// It returns the number of ticks taken.
func (s *Session) Advance(n int) int {
	if s.paused {
		if !s.tickOnce {
			return 0
		}
		n = 1
	}
	s.tickOnce = false
	for i := 0; i < n; i++ {
		s.world.Step()
	}
	return n
}
