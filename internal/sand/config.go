package sand

import (
	"fmt"
	"strconv"
)

// Scene selects the layout Reset builds.
type Scene string

const (
	SceneEmpty     Scene = "empty"
	SceneBasin     Scene = "basin"
	SceneHourglass Scene = "hourglass"
)

// ParseScene resolves a scene by name.
func ParseScene(name string) (Scene, error) {
	switch s := Scene(name); s {
	case SceneEmpty, SceneBasin, SceneHourglass:
		return s, nil
	case "":
		return SceneEmpty, nil
	default:
		return SceneEmpty, fmt.Errorf("sand: unknown scene %q", name)
	}
}

// Config controls the sand world.
type Config struct {
	Width  int
	Height int

	Seed  int64
	Scene Scene

	Physics Physics
	Table   *Table
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   320,
		Height:  240,
		Seed:    42,
		Scene:   SceneEmpty,
		Physics: DefaultPhysics(),
		Table:   DefaultTable(),
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c, _ := ApplyMap(DefaultConfig(), cfg)
	return c
}

// ApplyMap overrides fields of c from cfg. Unparseable values are skipped and
// reported in the returned error; the remaining keys still apply.
func ApplyMap(c Config, cfg map[string]string) (Config, error) {
	if cfg == nil {
		return c, nil
	}
	var bad []string
	intKey := func(key string, dst *int, valid func(int) bool) {
		v, ok := cfg[key]
		if !ok {
			return
		}
		parsed, err := strconv.Atoi(v)
		if err != nil || !valid(parsed) {
			bad = append(bad, key)
			return
		}
		*dst = parsed
	}
	positive := func(v int) bool { return v > 0 }
	anyInt := func(int) bool { return true }

	intKey("w", &c.Width, positive)
	intKey("h", &c.Height, positive)
	intKey("gravity", &c.Physics.Gravity, anyInt)
	intKey("max_y_velocity", &c.Physics.MaxVelocityY, anyInt)
	intKey("min_y_velocity", &c.Physics.MinVelocityY, anyInt)
	if c.Physics.MaxVelocityY < c.Physics.MinVelocityY {
		c.Physics.MaxVelocityY = c.Physics.MinVelocityY
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		} else {
			bad = append(bad, "seed")
		}
	}
	if v, ok := cfg["tie_break"]; ok {
		if parsed, err := ParseTieBreak(v); err == nil {
			c.Physics.TieBreak = parsed
		} else {
			bad = append(bad, "tie_break")
		}
	}
	if v, ok := cfg["reverse_slip"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Physics.ReverseSlip = parsed
		} else {
			bad = append(bad, "reverse_slip")
		}
	}
	if v, ok := cfg["scene"]; ok {
		if parsed, err := ParseScene(v); err == nil {
			c.Scene = parsed
		} else {
			bad = append(bad, "scene")
		}
	}
	if len(bad) > 0 {
		return c, fmt.Errorf("sand: invalid values for %v", bad)
	}
	return c, nil
}
