package core

import "time"

// maxCatchUp bounds how many ticks a single frame may run after a stall.
const maxCatchUp = 4

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// independently of how often the front end redraws.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval reports the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.Advance(time.Now()) > 0
}

// Advance accumulates the time elapsed since the previous call and returns the
// number of ticks that are due, capped at maxCatchUp.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	ticks := 0
	for f.accumulator >= f.step && ticks < maxCatchUp {
		f.accumulator -= f.step
		ticks++
	}
	if ticks == maxCatchUp && f.accumulator >= f.step {
		f.accumulator = 0
	}
	return ticks
}
