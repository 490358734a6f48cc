package sand

import (
	"strings"
	"testing"
)

func TestDefaultTableCoversEveryMaterial(t *testing.T) {
	table := DefaultTable()
	if got := len(table.Palette()); got != int(MaterialCount) {
		t.Fatalf("palette has %d entries, want %d", got, MaterialCount)
	}
	if table.Density(Air) != 0 {
		t.Fatal("air must have zero density")
	}
	if table.Density(Sand) != 1.8 || table.Density(Water) != 1.0 || table.Density(DenseSand) != 1.8 {
		t.Fatal("unexpected default densities")
	}
	if table.Slipperiness(Water) != 3 {
		t.Fatalf("water slipperiness = %d, want 3", table.Slipperiness(Water))
	}
	if table.Behavior(Sand) != BehaviorGranular || table.Behavior(Water) != BehaviorFluid {
		t.Fatal("unexpected default behaviors")
	}
}

func TestNewTableRejectsMissingAndInvalidEntries(t *testing.T) {
	props := DefaultProperties()
	delete(props, Water)
	bad := props[Sand]
	bad.Density = -1
	props[Sand] = bad
	props[Material(42)] = Properties{}

	_, err := NewTable(props)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"no properties for water", "sand density", "undefined material 42"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %q", err, want)
		}
	}
}

func TestNewTableRejectsHeavyAir(t *testing.T) {
	props := DefaultProperties()
	air := props[Air]
	air.Density = 0.5
	props[Air] = air
	if _, err := NewTable(props); err == nil {
		t.Fatal("air with density should be rejected")
	}
}

func TestPropertiesPanicsOnInvalidMaterial(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range material")
		}
	}()
	DefaultTable().Properties(MaterialCount)
}

func TestParseMaterial(t *testing.T) {
	cases := map[string]Material{
		"sand":       Sand,
		"Water":      Water,
		"dense-sand": DenseSand,
		"dense sand": DenseSand,
		" stone ":    Stone,
		"air":        Air,
	}
	for in, want := range cases {
		got, err := ParseMaterial(in)
		if err != nil || got != want {
			t.Fatalf("ParseMaterial(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMaterial("lava"); err == nil {
		t.Fatal("unknown material should fail")
	}
	if s := Material(200).String(); s != "Material(200)" {
		t.Fatalf("String of invalid material = %q", s)
	}
}
