package ui

import (
	"fmt"
	"image/color"

	"falling-sand/internal/sand"
)

// Status is the per-frame summary shown under the HUD controls.
type Status struct {
	Material sand.Material
	Brush    sand.Brush
	Tick     int64
	Paused   bool
	Stats    sand.Stats
	Palette  []color.RGBA
}

// Lines renders the status as label/value rows.
func (s Status) Lines() [][2]string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return [][2]string{
		{"Material", s.Material.String()},
		{"Brush", fmt.Sprintf("%s r=%d", s.Brush.Shape, s.Brush.Radius)},
		{"Tick", fmt.Sprintf("%d (%s)", s.Tick, state)},
		{"Moved", fmt.Sprint(s.Stats.Moved)},
		{"Blocked", fmt.Sprint(s.Stats.Blocked)},
		{"Settled", fmt.Sprint(s.Stats.Settled)},
	}
}

// Swatch returns the palette color of the selected material.
func (s Status) Swatch() color.RGBA {
	if int(s.Material) < len(s.Palette) {
		return s.Palette[s.Material]
	}
	return color.RGBA{}
}
