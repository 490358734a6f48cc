package sand

import "fmt"

// Random is the single stream every stochastic decision draws from. Each call
// consumes a fresh draw.
type Random interface {
	Bool() bool
	Float64() float64
}

// TieBreak selects how the two diagonal candidates below a blocked cell are
// ordered.
type TieBreak uint8

const (
	// TieBreakIndependent orders the candidates with two independent draws,
	// so both attempts may target the same side.
	TieBreakIndependent TieBreak = iota
	// TieBreakShuffle uses one draw and always tries both sides.
	TieBreakShuffle
)

func (t TieBreak) String() string {
	if t == TieBreakShuffle {
		return "shuffle"
	}
	return "independent"
}

// ParseTieBreak resolves a tie-break policy by name.
func ParseTieBreak(name string) (TieBreak, error) {
	switch name {
	case "independent", "":
		return TieBreakIndependent, nil
	case "shuffle":
		return TieBreakShuffle, nil
	default:
		return TieBreakIndependent, fmt.Errorf("sand: unknown tie break %q", name)
	}
}

// Physics holds the stepper constants.
type Physics struct {
	Gravity      int
	MinVelocityY int
	MaxVelocityY int
	TieBreak     TieBreak
	// ReverseSlip flips a fluid's slip direction when its slide is blocked.
	ReverseSlip bool
}

// DefaultPhysics returns the standard constants.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:      1,
		MinVelocityY: -8,
		MaxVelocityY: 8,
		TieBreak:     TieBreakIndependent,
		ReverseSlip:  true,
	}
}

// Outcome is the result of handling one cell for one tick.
type Outcome uint8

const (
	// Blocked means the cell could not move but was not settled.
	Blocked Outcome = iota
	// Settled means the cell rests on the bottom row.
	Settled
	// Moved means at least one swap happened.
	Moved
)

func (o Outcome) String() string {
	switch o {
	case Settled:
		return "settled"
	case Moved:
		return "moved"
	default:
		return "blocked"
	}
}

// Stats counts per-cell outcomes of the last tick.
type Stats struct {
	Moved   int
	Settled int
	Blocked int
}

func (s *Stats) record(o Outcome) {
	switch o {
	case Moved:
		s.Moved++
	case Settled:
		s.Settled++
	default:
		s.Blocked++
	}
}

// Stepper advances a Grid by one tick.
type Stepper struct {
	table   *Table
	physics Physics
	stats   Stats
}

// NewStepper builds a stepper over the given material table.
func NewStepper(table *Table, physics Physics) *Stepper {
	if physics.MaxVelocityY < physics.MinVelocityY {
		physics.MaxVelocityY = physics.MinVelocityY
	}
	return &Stepper{table: table, physics: physics}
}

// Physics returns the current constants.
func (s *Stepper) Physics() Physics { return s.physics }

// SetPhysics replaces the constants used from the next tick on.
func (s *Stepper) SetPhysics(p Physics) {
	if p.MaxVelocityY < p.MinVelocityY {
		p.MaxVelocityY = p.MinVelocityY
	}
	s.physics = p
}

// LastStats reports the outcome counts of the most recent Step.
func (s *Stepper) LastStats() Stats { return s.stats }

// Step runs one tick over g. Rows are visited bottom-up so a falling cell is
// never revisited in the same tick; one draw per tick picks the column order
// for every row.
func (s *Stepper) Step(g *Grid, rng Random) {
	s.stats = Stats{}
	w, h := g.w, g.h
	reverse := rng.Bool()
	for y := h - 1; y >= 0; y-- {
		for i := 0; i < w; i++ {
			x := i
			if reverse {
				x = w - 1 - i
			}
			c := &g.cells[y*w+x]
			if c.Processed || c.Material == Air || !c.Displaceable {
				continue
			}
			switch s.table.Behavior(c.Material) {
			case BehaviorGranular:
				s.stats.record(s.handleGranular(g, x, y, rng))
			case BehaviorFluid:
				s.stats.record(s.handleFluid(g, x, y, rng))
			}
		}
	}
}

// mayDisplace reports whether mover may take resident's place. Equal or lower
// density never displaces; otherwise the density gap is the probability.
func (s *Stepper) mayDisplace(resident, mover *Cell, rng Random) bool {
	if !resident.Displaceable {
		return false
	}
	d := s.table.Density(mover.Material) - s.table.Density(resident.Material)
	if d <= 0 {
		return false
	}
	return rng.Float64() < d
}

// fall integrates gravity and sinks the cell at (x, y) as far as its velocity
// and the cells below allow.
func (s *Stepper) fall(g *Grid, x, y int, rng Random) Outcome {
	c := g.At(x, y)
	c.Velocity.Y = min(max(c.Velocity.Y+s.physics.Gravity, s.physics.MinVelocityY), s.physics.MaxVelocityY)

	fallen := 0
	for step := 1; step <= c.Velocity.Y; step++ {
		below := g.At(x, y+step)
		if below == nil || !s.mayDisplace(below, c, rng) {
			break
		}
		fallen++
	}

	if fallen == 0 {
		c.Velocity.Y = 0
		if y == g.h-1 {
			c.Processed = true
			return Settled
		}
		return Blocked
	}

	for i := 0; i < fallen; i++ {
		g.Swap(x, y+i, x, y+i+1)
		g.At(x, y+i).Processed = true
		g.At(x, y+i+1).Processed = true
	}
	return Moved
}

// diagonal tries to roll the cell at (x, y) into one of the two cells below it.
func (s *Stepper) diagonal(g *Grid, x, y int, rng Random) bool {
	left, right := x-1, x+1
	var candidates [2]int
	switch s.physics.TieBreak {
	case TieBreakShuffle:
		if rng.Bool() {
			candidates = [2]int{left, right}
		} else {
			candidates = [2]int{right, left}
		}
	default:
		candidates[0] = right
		if rng.Bool() {
			candidates[0] = left
		}
		candidates[1] = left
		if rng.Bool() {
			candidates[1] = right
		}
	}

	c := g.At(x, y)
	for _, nx := range candidates {
		target := g.At(nx, y+1)
		if target == nil {
			continue
		}
		if s.mayDisplace(target, c, rng) {
			c.Processed = true
			target.Processed = true
			g.Swap(x, y, nx, y+1)
			return true
		}
	}
	return false
}

func (s *Stepper) handleGranular(g *Grid, x, y int, rng Random) Outcome {
	if out := s.fall(g, x, y, rng); out != Blocked {
		return out
	}
	if s.diagonal(g, x, y, rng) {
		return Moved
	}
	return Blocked
}

func (s *Stepper) handleFluid(g *Grid, x, y int, rng Random) Outcome {
	out := s.fall(g, x, y, rng)
	if out == Moved {
		return out
	}
	if s.diagonal(g, x, y, rng) {
		return Moved
	}

	c := g.At(x, y)
	if c.Velocity.X == 0 {
		c.Velocity.X = -1
		if rng.Bool() {
			c.Velocity.X = 1
		}
	}
	dir := 1
	if c.Velocity.X < 0 {
		dir = -1
	}

	slip := s.table.Slipperiness(c.Material)
	cx := x
	for i := 0; i < slip; i++ {
		mover := g.At(cx, y)
		next := g.At(cx+dir, y)
		if next == nil || !s.mayDisplace(next, mover, rng) {
			mover.Processed = true
			if s.physics.ReverseSlip {
				mover.Velocity.X = -dir
			}
			if cx != x {
				return Moved
			}
			return out
		}
		mover.Processed = true
		next.Processed = true
		g.Swap(cx, y, cx+dir, y)
		cx += dir
	}
	if cx != x {
		return Moved
	}
	return out
}
