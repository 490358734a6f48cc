package sand

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Material identifies what a cell is made of. Values form a dense zero-based
// range and index directly into a Table.
type Material uint8

const (
	Air Material = iota
	Sand
	Water
	DenseSand
	Stone

	// MaterialCount is the number of defined materials.
	MaterialCount
)

var materialNames = [MaterialCount]string{
	Air:       "air",
	Sand:      "sand",
	Water:     "water",
	DenseSand: "dense_sand",
	Stone:     "stone",
}

// Valid reports whether m is a defined material.
func (m Material) Valid() bool { return m < MaterialCount }

func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Material(%d)", uint8(m))
	}
	return materialNames[m]
}

// ParseMaterial resolves a material by name. Matching ignores case and treats
// dashes and spaces like underscores.
func ParseMaterial(name string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for m, n := range materialNames {
		if n == key {
			return Material(m), nil
		}
	}
	return Air, fmt.Errorf("sand: unknown material %q", name)
}

// Behavior selects the movement rules the stepper applies to a material.
type Behavior uint8

const (
	// BehaviorNone marks empty space; the stepper never visits it.
	BehaviorNone Behavior = iota
	// BehaviorStatic marks solids that never move on their own.
	BehaviorStatic
	// BehaviorGranular falls and rolls diagonally.
	BehaviorGranular
	// BehaviorFluid falls, rolls diagonally and slips sideways.
	BehaviorFluid
)

func (b Behavior) String() string {
	switch b {
	case BehaviorNone:
		return "none"
	case BehaviorStatic:
		return "static"
	case BehaviorGranular:
		return "granular"
	case BehaviorFluid:
		return "fluid"
	default:
		return fmt.Sprintf("Behavior(%d)", uint8(b))
	}
}

// Properties holds the physical constants of one material.
type Properties struct {
	Density      float64
	Slipperiness int
	Color        color.RGBA
	Behavior     Behavior
}

// Table maps every material to its properties. It is immutable once built.
type Table struct {
	props   [MaterialCount]Properties
	palette []color.RGBA
}

var defaultProperties = map[Material]Properties{
	Air:       {Density: 0, Slipperiness: 0, Color: color.RGBA{0, 0, 0, 0}, Behavior: BehaviorNone},
	Sand:      {Density: 1.8, Slipperiness: 0, Color: color.RGBA{236, 196, 131, 255}, Behavior: BehaviorGranular},
	Water:     {Density: 1.0, Slipperiness: 3, Color: color.RGBA{101, 192, 220, 255}, Behavior: BehaviorFluid},
	DenseSand: {Density: 1.8, Slipperiness: 0, Color: color.RGBA{160, 82, 89, 255}, Behavior: BehaviorGranular},
	Stone:     {Density: 3.0, Slipperiness: 0, Color: color.RGBA{128, 128, 138, 255}, Behavior: BehaviorStatic},
}

// DefaultProperties returns a copy of the built-in material constants.
func DefaultProperties() map[Material]Properties {
	out := make(map[Material]Properties, len(defaultProperties))
	for m, p := range defaultProperties {
		out[m] = p
	}
	return out
}

// DefaultTable returns the table built from the built-in constants.
func DefaultTable() *Table {
	t, err := NewTable(defaultProperties)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable validates that every material has an entry and builds a Table.
func NewTable(entries map[Material]Properties) (*Table, error) {
	var errs []error
	for m := range entries {
		if !m.Valid() {
			errs = append(errs, fmt.Errorf("sand: properties for undefined material %d", uint8(m)))
		}
	}
	t := &Table{palette: make([]color.RGBA, MaterialCount)}
	for i := Material(0); i < MaterialCount; i++ {
		p, ok := entries[i]
		if !ok {
			errs = append(errs, fmt.Errorf("sand: no properties for %s", i))
			continue
		}
		if p.Density < 0 {
			errs = append(errs, fmt.Errorf("sand: %s density %g is negative", i, p.Density))
		}
		if p.Slipperiness < 0 {
			errs = append(errs, fmt.Errorf("sand: %s slipperiness %d is negative", i, p.Slipperiness))
		}
		if i == Air && (p.Density != 0 || p.Behavior != BehaviorNone) {
			errs = append(errs, errors.New("sand: air must have zero density and no behavior"))
		}
		if i != Air && p.Behavior == BehaviorNone {
			errs = append(errs, fmt.Errorf("sand: %s has no behavior", i))
		}
		t.props[i] = p
		t.palette[i] = p.Color
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

// Properties returns the constants for m. An undefined material is a
// programming error and panics.
func (t *Table) Properties(m Material) Properties {
	if !m.Valid() {
		panic(fmt.Sprintf("sand: material ordinal %d out of range [0,%d)", uint8(m), MaterialCount))
	}
	return t.props[m]
}

// Density returns the density of m.
func (t *Table) Density(m Material) float64 { return t.Properties(m).Density }

// Slipperiness returns how many cells m may slide sideways per tick.
func (t *Table) Slipperiness(m Material) int { return t.Properties(m).Slipperiness }

// Behavior returns the movement rules for m.
func (t *Table) Behavior(m Material) Behavior { return t.Properties(m).Behavior }

// Palette exposes the display colors indexed by material ordinal.
func (t *Table) Palette() []color.RGBA { return t.palette }
