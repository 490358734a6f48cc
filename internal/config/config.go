// Package config provides YAML-based configuration loading for the sand
// simulator: grid dimensions, physics constants, material overrides, brush
// and runtime settings.
package config

// File is the on-disk configuration layout.
type File struct {
	Grid      GridConfig                `yaml:"grid"`
	Physics   PhysicsConfig             `yaml:"physics"`
	Materials map[string]MaterialConfig `yaml:"materials"`
	Brush     BrushConfig               `yaml:"brush"`
	Runtime   RuntimeConfig             `yaml:"runtime"`
}

// GridConfig defines the grid dimensions and starting scene.
type GridConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scene  string `yaml:"scene"`
}

// PhysicsConfig defines the stepper constants.
type PhysicsConfig struct {
	Gravity      *int   `yaml:"gravity"`
	MinVelocityY int    `yaml:"min_y_velocity"`
	MaxVelocityY int    `yaml:"max_y_velocity"`
	TieBreak     string `yaml:"tie_break"`
	ReverseSlip  *bool  `yaml:"reverse_slip"`
}

// MaterialConfig overrides the built-in constants of one material. Omitted
// fields keep their defaults.
type MaterialConfig struct {
	Density      *float64 `yaml:"density"`
	Slipperiness *int     `yaml:"slipperiness"`
	Color        string   `yaml:"color"`
}

// BrushConfig defines the initial brush.
type BrushConfig struct {
	Radius   int    `yaml:"radius"`
	Shape    string `yaml:"shape"`
	Material string `yaml:"material"`
}

// RuntimeConfig defines front-end pacing and presentation.
type RuntimeConfig struct {
	TPS   int   `yaml:"tps"`
	Scale int   `yaml:"scale"`
	Seed  int64 `yaml:"seed"`
}
