package config

import (
	_ "embed"

	"falling-sand/internal/sand"
)

//go:embed defaults/sand.yaml
var defaultSandYAML []byte

// DefaultFile returns the built-in configuration, used when the embedded
// YAML cannot be parsed.
func DefaultFile() File {
	def := sand.DefaultConfig()
	gravity := def.Physics.Gravity
	reverse := def.Physics.ReverseSlip
	return File{
		Grid: GridConfig{
			Width:  def.Width,
			Height: def.Height,
			Scene:  string(sand.SceneBasin),
		},
		Physics: PhysicsConfig{
			Gravity:      &gravity,
			MinVelocityY: def.Physics.MinVelocityY,
			MaxVelocityY: def.Physics.MaxVelocityY,
			TieBreak:     def.Physics.TieBreak.String(),
			ReverseSlip:  &reverse,
		},
		Brush: BrushConfig{
			Radius:   4,
			Shape:    sand.BrushDisc.String(),
			Material: sand.Sand.String(),
		},
		Runtime: RuntimeConfig{
			TPS:   60,
			Scale: 2,
			Seed:  def.Seed,
		},
	}
}
