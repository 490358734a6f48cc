package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"falling-sand/internal/sand"
)

const fileName = "sand.yaml"

// Load reads the sand configuration.
// Search order: customPath -> ~/.sandfall/sand.yaml -> ./configs/sand.yaml -> embedded default.
// It also reports which source was used.
func Load(customPath string) (File, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", fileName)
	if cfg, err := readFile(local); err == nil {
		return cfg, local, nil
	}

	// Use embedded default YAML
	var cfg File
	if err := yaml.Unmarshal(defaultSandYAML, &cfg); err != nil {
		return DefaultFile(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

func readFile(path string) (File, error) {
	var cfg File
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sandfall", filename)
}

// SandConfig converts the file into a world configuration. Zero-valued fields
// keep the built-in defaults; gravity and reverse_slip apply whenever present.
func (f File) SandConfig() (sand.Config, error) {
	c := sand.DefaultConfig()
	var errs []error

	if f.Grid.Width > 0 {
		c.Width = f.Grid.Width
	}
	if f.Grid.Height > 0 {
		c.Height = f.Grid.Height
	}
	if f.Grid.Scene != "" {
		scene, err := sand.ParseScene(f.Grid.Scene)
		if err != nil {
			errs = append(errs, err)
		}
		c.Scene = scene
	}
	if f.Runtime.Seed != 0 {
		c.Seed = f.Runtime.Seed
	}

	p := &c.Physics
	if f.Physics.Gravity != nil {
		p.Gravity = *f.Physics.Gravity
	}
	if f.Physics.MinVelocityY != 0 {
		p.MinVelocityY = f.Physics.MinVelocityY
	}
	if f.Physics.MaxVelocityY != 0 {
		p.MaxVelocityY = f.Physics.MaxVelocityY
	}
	if p.MaxVelocityY < p.MinVelocityY {
		errs = append(errs, fmt.Errorf("config: max_y_velocity %d below min_y_velocity %d", p.MaxVelocityY, p.MinVelocityY))
	}
	if f.Physics.TieBreak != "" {
		tb, err := sand.ParseTieBreak(f.Physics.TieBreak)
		if err != nil {
			errs = append(errs, err)
		}
		p.TieBreak = tb
	}
	if f.Physics.ReverseSlip != nil {
		p.ReverseSlip = *f.Physics.ReverseSlip
	}

	table, err := f.Table()
	if err != nil {
		errs = append(errs, err)
	} else {
		c.Table = table
	}

	if len(errs) > 0 {
		return c, errors.Join(errs...)
	}
	return c, nil
}

// Table builds the material table from the built-in constants plus the
// file's per-material overrides.
func (f File) Table() (*sand.Table, error) {
	props := sand.DefaultProperties()
	var errs []error
	for name, mc := range f.Materials {
		m, err := sand.ParseMaterial(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: materials: %w", err))
			continue
		}
		p := props[m]
		if mc.Density != nil {
			p.Density = *mc.Density
		}
		if mc.Slipperiness != nil {
			p.Slipperiness = *mc.Slipperiness
		}
		if mc.Color != "" {
			col, err := ParseColor(mc.Color)
			if err != nil {
				errs = append(errs, fmt.Errorf("config: materials.%s: %w", name, err))
			}
			p.Color = col
		}
		props[m] = p
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	table, err := sand.NewTable(props)
	if err != nil {
		return nil, fmt.Errorf("config: materials: %w", err)
	}
	return table, nil
}

// BrushSettings returns the configured brush and paint material.
func (f File) BrushSettings() (sand.Brush, sand.Material, error) {
	b := sand.Brush{Radius: f.Brush.Radius, Shape: sand.BrushDisc}
	if b.Radius == 0 {
		b.Radius = 4
	}
	switch strings.ToLower(f.Brush.Shape) {
	case "", "disc":
	case "square":
		b.Shape = sand.BrushSquare
	default:
		return b.Clamp(), sand.Sand, fmt.Errorf("config: unknown brush shape %q", f.Brush.Shape)
	}
	m := sand.Sand
	if f.Brush.Material != "" {
		parsed, err := sand.ParseMaterial(f.Brush.Material)
		if err != nil {
			return b.Clamp(), sand.Sand, fmt.Errorf("config: brush: %w", err)
		}
		m = parsed
	}
	return b.Clamp(), m, nil
}

// ParseColor accepts #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
