package sand

import (
	"slices"
	"testing"

	"falling-sand/internal/core"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Seed = 99
	cfg.Scene = SceneHourglass

	run := func(seed int64) []uint8 {
		world := NewWithConfig(cfg)
		world.Reset(seed)
		for i := 0; i < 60; i++ {
			world.Step()
		}
		return slices.Clone(world.Cells())
	}

	first := run(0)
	if !slices.Equal(first, run(0)) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if !slices.Equal(run(777), run(777)) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(first, run(777)) {
		t.Fatal("different seeds should diverge")
	}
}

func TestStepClearsProcessedAndRefreshesDisplay(t *testing.T) {
	world := New(4, 4)
	world.Apply(PaintCommand{TopLeft: Point{1, 0}, BottomRight: Point{1, 0}, Mode: PaintSet, Material: Sand})
	if world.Cells()[1] != uint8(Sand) {
		t.Fatal("paint should be visible in the display buffer immediately")
	}

	// freshly painted cells are marked processed and hold still for one tick
	world.Step()
	if m, _ := world.MaterialAt(Point{1, 0}); m != Sand {
		t.Fatalf("painted sand moved on its first tick, found %v", m)
	}
	world.Grid().Snapshot(func(x, y int, _ Material) {
		if world.Grid().At(x, y).Processed {
			t.Fatalf("(%d,%d) still processed after Step", x, y)
		}
	})

	world.Step()
	if m, _ := world.MaterialAt(Point{1, 1}); m != Sand {
		t.Fatalf("sand should fall one row on the next tick, found %v", m)
	}
	if world.Cells()[world.Size().W+1] != uint8(Sand) {
		t.Fatal("display buffer not refreshed after Step")
	}
	if world.Tick() != 2 {
		t.Fatalf("tick = %d, want 2", world.Tick())
	}
}

func TestPaintWithBrushAndEyedropper(t *testing.T) {
	world := New(10, 10)
	world.Paint(Brush{Radius: 2, Shape: BrushSquare}, Point{5, 5}, PaintSet, Water)
	if got := world.Census()[Water]; got != 9 {
		t.Fatalf("painted %d water cells, want 9", got)
	}
	if m, ok := world.MaterialAt(Point{4, 4}); !ok || m != Water {
		t.Fatalf("MaterialAt(4,4) = %v, %v", m, ok)
	}
	if _, ok := world.MaterialAt(Point{-1, 4}); ok {
		t.Fatal("MaterialAt out of range should report false")
	}
	world.Paint(Brush{Radius: 5}, Point{5, 5}, PaintErase, Air)
	if got := world.Census()[Water]; got != 0 {
		t.Fatalf("%d water cells survived erase", got)
	}
}

func TestScenesBuildWalls(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 40, 40
	cfg.Scene = SceneBasin
	world := NewWithConfig(cfg)
	g := world.Grid()
	for _, p := range []Point{{0, 0}, {39, 10}, {20, 39}} {
		c := g.At(p.X, p.Y)
		if c.Material != Stone || c.Displaceable {
			t.Fatalf("basin wall missing at %v: %+v", p, *c)
		}
	}

	cfg.Scene = SceneHourglass
	world = NewWithConfig(cfg)
	census := world.Census()
	if census[Sand] == 0 || census[Water] == 0 {
		t.Fatalf("hourglass should start with sand and water, census %v", census)
	}
	before := census[Sand]
	for i := 0; i < 200; i++ {
		world.Step()
	}
	if after := world.Census(); after[Sand] != before || after[Stone] != census[Stone] {
		t.Fatalf("stepping must only move cells, census %v -> %v", census, after)
	}
}

func TestSetIntParameter(t *testing.T) {
	world := New(8, 8)
	if !world.SetIntParameter("gravity", 2) {
		t.Fatal("gravity should be adjustable")
	}
	if world.Config().Physics.Gravity != 2 {
		t.Fatalf("gravity = %d, want 2", world.Config().Physics.Gravity)
	}
	world.SetIntParameter("max_y_velocity", -20)
	if p := world.Config().Physics; p.MaxVelocityY < p.MinVelocityY {
		t.Fatalf("max velocity %d below min %d", p.MaxVelocityY, p.MinVelocityY)
	}
	if world.SetIntParameter("unknown", 1) {
		t.Fatal("unknown key should be rejected")
	}
	param, ok := world.Parameters().Lookup("gravity")
	if !ok || param.Value != "2" {
		t.Fatalf("snapshot gravity = %+v, %v", param, ok)
	}
	if len(world.ParameterControls()) == 0 {
		t.Fatal("expected HUD controls")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":              "64",
		"h":              "48",
		"seed":           "5",
		"gravity":        "2",
		"max_y_velocity": "4",
		"tie_break":      "shuffle",
		"reverse_slip":   "false",
		"scene":          "basin",
	})
	if c.Width != 64 || c.Height != 48 || c.Seed != 5 {
		t.Fatalf("dimensions/seed not applied: %+v", c)
	}
	p := c.Physics
	if p.Gravity != 2 || p.MaxVelocityY != 4 || p.TieBreak != TieBreakShuffle || p.ReverseSlip {
		t.Fatalf("physics not applied: %+v", p)
	}
	if c.Scene != SceneBasin {
		t.Fatalf("scene = %q", c.Scene)
	}

	c, err := ApplyMap(DefaultConfig(), map[string]string{"w": "-3", "scene": "volcano", "h": "10"})
	if err == nil {
		t.Fatal("expected error for invalid values")
	}
	if c.Width != DefaultConfig().Width || c.Height != 10 {
		t.Fatalf("valid keys should still apply, got %dx%d", c.Width, c.Height)
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["sand"]
	if !ok {
		t.Fatal("sand sim not registered")
	}
	sim := factory(map[string]string{"w": "16", "h": "12"})
	if sim.Name() != "sand" {
		t.Fatalf("name = %q", sim.Name())
	}
	if size := sim.Size(); size.W != 16 || size.H != 12 || len(sim.Cells()) != 16*12 {
		t.Fatalf("size = %+v, cells %d", size, len(sim.Cells()))
	}
}
