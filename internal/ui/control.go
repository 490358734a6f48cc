package ui

import (
	"image"
	"strconv"

	"falling-sand/internal/core"
)

// intControl is one integer parameter row with -/+ buttons.
type intControl struct {
	core.ParameterControl
	value    int
	hasValue bool

	top         int
	minus, plus image.Rectangle
}

func (c *intControl) refresh(snapshot core.ParameterSnapshot) {
	c.hasValue = false
	if p, ok := snapshot.Lookup(c.Key); ok {
		if v, err := strconv.Atoi(p.Value); err == nil {
			c.value, c.hasValue = v, true
		}
	}
}

// target returns the value one step in direction and whether it differs
// from the current value.
func (c *intControl) target(direction int) (int, bool) {
	if !c.hasValue {
		return 0, false
	}
	step := max(int(c.Step), 1)
	v := c.value + direction*step
	if c.HasMin {
		v = max(v, int(c.Min))
	}
	if c.HasMax {
		v = min(v, int(c.Max))
	}
	return v, v != c.value
}
