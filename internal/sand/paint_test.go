package sand

import (
	"slices"
	"testing"
)

func TestPaintSetWritesFreshCells(t *testing.T) {
	g := NewGrid(4, 4)
	g.ResetProcessed()
	g.At(1, 1).Velocity = Velocity{X: 1, Y: 5}

	g.Apply(PaintCommand{TopLeft: Point{1, 1}, BottomRight: Point{2, 2}, Mode: PaintSet, Material: Water})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := g.At(x, y)
			inside := x >= 1 && x <= 2 && y >= 1 && y <= 2
			if !inside {
				if c.Material != Air {
					t.Fatalf("(%d,%d) painted outside the rectangle", x, y)
				}
				continue
			}
			want := Cell{Material: Water, Processed: true, Displaceable: true}
			if *c != want {
				t.Fatalf("(%d,%d) = %+v, want %+v", x, y, *c, want)
			}
		}
	}
}

func TestPaintSkipsOutOfRangeAndNormalisesCorners(t *testing.T) {
	g := NewGrid(3, 3)
	g.Apply(PaintCommand{TopLeft: Point{5, 5}, BottomRight: Point{-2, 1}, Mode: PaintSet, Material: Sand})
	counts := g.Census()
	if counts[Sand] != 6 {
		t.Fatalf("painted %d sand cells, want rows 1-2 fully (6)", counts[Sand])
	}
	g.Apply(PaintCommand{TopLeft: Point{10, 10}, BottomRight: Point{12, 12}, Mode: PaintErase})
	if g.Census()[Sand] != 6 {
		t.Fatal("a fully out-of-range command must not change the grid")
	}
}

func TestEraseAndPaintIdempotent(t *testing.T) {
	g := NewGrid(6, 6)
	g.Apply(PaintCommand{TopLeft: Point{0, 0}, BottomRight: Point{5, 5}, Mode: PaintSet, Material: Sand})
	g.SetObstacle(3, 3, Stone)

	erase := PaintCommand{TopLeft: Point{1, 1}, BottomRight: Point{4, 4}, Mode: PaintErase}
	g.Apply(erase)
	once := slices.Clone(g.cells)
	g.Apply(erase)
	if !slices.Equal(once, g.cells) {
		t.Fatal("erasing twice differs from erasing once")
	}
	if *g.At(3, 3) != AirCell() {
		t.Fatal("erase should also clear obstacles")
	}

	paint := PaintCommand{TopLeft: Point{0, 2}, BottomRight: Point{5, 3}, Mode: PaintSet, Material: DenseSand}
	g.Apply(paint)
	once = slices.Clone(g.cells)
	g.Apply(paint)
	if !slices.Equal(once, g.cells) {
		t.Fatal("painting twice differs from painting once")
	}
}

func TestBrushClampAndResize(t *testing.T) {
	if got := (Brush{Radius: 0}).Clamp().Radius; got != MinBrushRadius {
		t.Fatalf("clamped radius = %d, want %d", got, MinBrushRadius)
	}
	if got := (Brush{Radius: 99}).Resize(5).Radius; got != MaxBrushRadius {
		t.Fatalf("resized radius = %d, want %d", got, MaxBrushRadius)
	}
	if got := (Brush{Radius: 4}).Resize(-1).Radius; got != 3 {
		t.Fatalf("resized radius = %d, want 3", got)
	}
}

func TestBrushCommands(t *testing.T) {
	square := Brush{Radius: 3, Shape: BrushSquare}.Commands(Point{5, 5}, PaintSet, Sand)
	if len(square) != 1 || square[0].TopLeft != (Point{3, 3}) || square[0].BottomRight != (Point{7, 7}) {
		t.Fatalf("square commands = %+v", square)
	}

	g := NewGrid(11, 11)
	for _, cmd := range (Brush{Radius: 3, Shape: BrushDisc}).Commands(Point{5, 5}, PaintSet, Water) {
		if cmd.TopLeft.Y != cmd.BottomRight.Y {
			t.Fatalf("disc command spans rows: %+v", cmd)
		}
		g.Apply(cmd)
	}
	// radius 3 covers dx*dx+dy*dy <= 4
	if got := g.Census()[Water]; got != 13 {
		t.Fatalf("disc painted %d cells, want 13", got)
	}
	if g.At(3, 3).Material == Water || g.At(5, 3).Material != Water {
		t.Fatal("disc footprint has the wrong shape")
	}

	single := Brush{Radius: 1, Shape: BrushDisc}.Commands(Point{0, 0}, PaintErase, Air)
	if len(single) != 1 || single[0].TopLeft != single[0].BottomRight {
		t.Fatalf("radius 1 brush should cover one cell, got %+v", single)
	}
}

func TestCursorOutline(t *testing.T) {
	c := Brush{Radius: 3, Shape: BrushSquare}.Cursor(Point{5, 5})
	tl, br := c.Bounds()
	if tl != (Point{3, 3}) || br != (Point{7, 7}) {
		t.Fatalf("bounds = %v %v", tl, br)
	}
	outline := c.Outline()
	if len(outline) != 16 {
		t.Fatalf("square outline has %d points, want 16", len(outline))
	}
	for _, p := range outline {
		if p.X != 3 && p.X != 7 && p.Y != 3 && p.Y != 7 {
			t.Fatalf("outline point %v is inside the square", p)
		}
	}

	disc := Brush{Radius: 3, Shape: BrushDisc}.Cursor(Point{5, 5}).Outline()
	if slices.Contains(disc, Point{5, 5}) {
		t.Fatal("disc outline must not contain the center")
	}
	for _, want := range []Point{{5, 3}, {3, 5}, {7, 5}, {5, 7}} {
		if !slices.Contains(disc, want) {
			t.Fatalf("disc outline missing %v", want)
		}
	}

	if got := (Cursor{Center: Point{1, 1}, Radius: 1}).Outline(); len(got) != 1 || got[0] != (Point{1, 1}) {
		t.Fatalf("radius 1 outline = %v", got)
	}
}
