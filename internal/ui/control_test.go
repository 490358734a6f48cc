package ui

import (
	"testing"

	"falling-sand/internal/core"
)

func TestIntControlTargetClamps(t *testing.T) {
	c := intControl{ParameterControl: core.ParameterControl{
		Key: "gravity", Type: core.ParamTypeInt, Step: 1,
		Min: 0, Max: 3, HasMin: true, HasMax: true,
	}}
	if _, ok := c.target(1); ok {
		t.Fatalf("control without a value should not adjust")
	}
	c.refresh(core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Params: []core.Parameter{{Key: "gravity", Value: "3"}},
	}}})
	if !c.hasValue || c.value != 3 {
		t.Fatalf("refresh = %d %v, want 3 true", c.value, c.hasValue)
	}
	if v, ok := c.target(1); ok || v != 3 {
		t.Fatalf("increment at max = %d %v", v, ok)
	}
	if v, ok := c.target(-1); !ok || v != 2 {
		t.Fatalf("decrement = %d %v, want 2 true", v, ok)
	}
	c.value = 0
	if _, ok := c.target(-1); ok {
		t.Fatalf("decrement at min should be disabled")
	}
}

func TestIntControlRefreshIgnoresNonIntegers(t *testing.T) {
	c := intControl{ParameterControl: core.ParameterControl{Key: "tie_break"}}
	c.refresh(core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Params: []core.Parameter{{Key: "tie_break", Value: "shuffle"}},
	}}})
	if c.hasValue {
		t.Fatalf("non-integer value should leave control empty")
	}
}
