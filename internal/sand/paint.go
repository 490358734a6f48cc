package sand

// PaintMode selects what a PaintCommand writes.
type PaintMode uint8

const (
	// PaintSet writes a fresh cell of the command's material.
	PaintSet PaintMode = iota
	// PaintErase resets cells to air.
	PaintErase
)

// PaintCommand fills the inclusive rectangle spanned by TopLeft and
// BottomRight. Cells outside the grid are skipped.
type PaintCommand struct {
	TopLeft     Point
	BottomRight Point
	Mode        PaintMode
	Material    Material
}

// Apply executes cmd against the grid.
func (g *Grid) Apply(cmd PaintCommand) {
	x0, x1 := ordered(cmd.TopLeft.X, cmd.BottomRight.X)
	y0, y1 := ordered(cmd.TopLeft.Y, cmd.BottomRight.Y)
	x0, x1 = max(x0, 0), min(x1, g.w-1)
	y0, y1 = max(y0, 0), min(y1, g.h-1)

	fresh := AirCell()
	if cmd.Mode == PaintSet {
		fresh = Cell{Material: cmd.Material, Processed: true, Displaceable: true}
	}
	for y := y0; y <= y1; y++ {
		row := g.cells[y*g.w : (y+1)*g.w]
		for x := x0; x <= x1; x++ {
			row[x] = fresh
		}
	}
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// BrushShape is the footprint of a brush.
type BrushShape uint8

const (
	BrushSquare BrushShape = iota
	BrushDisc
)

func (s BrushShape) String() string {
	if s == BrushDisc {
		return "disc"
	}
	return "square"
}

const (
	MinBrushRadius = 1
	MaxBrushRadius = 100
)

// Brush converts a pointer position into paint commands.
type Brush struct {
	Radius int
	Shape  BrushShape
}

// Clamp returns b with its radius limited to [MinBrushRadius, MaxBrushRadius].
func (b Brush) Clamp() Brush {
	b.Radius = min(max(b.Radius, MinBrushRadius), MaxBrushRadius)
	return b
}

// Resize returns b grown by delta, clamped.
func (b Brush) Resize(delta int) Brush {
	b.Radius += delta
	return b.Clamp()
}

// Commands returns the paint commands covering the brush footprint at center.
// A square brush is one rectangle; a disc emits one single-row rectangle per
// scanline.
func (b Brush) Commands(center Point, mode PaintMode, m Material) []PaintCommand {
	b = b.Clamp()
	r := b.Radius - 1
	if b.Shape == BrushSquare {
		return []PaintCommand{{
			TopLeft:     Point{center.X - r, center.Y - r},
			BottomRight: Point{center.X + r, center.Y + r},
			Mode:        mode,
			Material:    m,
		}}
	}
	cmds := make([]PaintCommand, 0, 2*r+1)
	for dy := -r; dy <= r; dy++ {
		half := discHalfWidth(r, dy)
		cmds = append(cmds, PaintCommand{
			TopLeft:     Point{center.X - half, center.Y + dy},
			BottomRight: Point{center.X + half, center.Y + dy},
			Mode:        mode,
			Material:    m,
		})
	}
	return cmds
}

// discHalfWidth returns the largest dx with dx*dx+dy*dy <= r*r.
func discHalfWidth(r, dy int) int {
	limit := r*r - dy*dy
	dx := 0
	for (dx+1)*(dx+1) <= limit {
		dx++
	}
	return dx
}

// Cursor describes the brush outline drawn over the grid. It is advisory and
// never part of the simulation state.
type Cursor struct {
	Center Point
	Radius int
	Shape  BrushShape
}

// Cursor returns the overlay descriptor for the brush at center.
func (b Brush) Cursor(center Point) Cursor {
	b = b.Clamp()
	return Cursor{Center: center, Radius: b.Radius, Shape: b.Shape}
}

// Bounds returns the inclusive top-left and bottom-right corners covered.
func (c Cursor) Bounds() (Point, Point) {
	r := c.Radius - 1
	return Point{c.Center.X - r, c.Center.Y - r}, Point{c.Center.X + r, c.Center.Y + r}
}

// Outline returns the boundary cells of the footprint in grid coordinates.
func (c Cursor) Outline() []Point {
	r := c.Radius - 1
	if r <= 0 {
		return []Point{c.Center}
	}
	var pts []Point
	if c.Shape == BrushSquare {
		for d := -r; d <= r; d++ {
			pts = append(pts,
				Point{c.Center.X + d, c.Center.Y - r},
				Point{c.Center.X + d, c.Center.Y + r})
		}
		for d := -r + 1; d <= r-1; d++ {
			pts = append(pts,
				Point{c.Center.X - r, c.Center.Y + d},
				Point{c.Center.X + r, c.Center.Y + d})
		}
		return pts
	}
	for dy := -r; dy <= r; dy++ {
		half := discHalfWidth(r, dy)
		inner := -1
		if dy > -r && dy < r {
			inner = min(discHalfWidth(r, dy-1), discHalfWidth(r, dy+1))
		}
		for dx := -half; dx <= half; dx++ {
			adx := dx
			if adx < 0 {
				adx = -adx
			}
			if adx > inner || adx == half {
				pts = append(pts, Point{c.Center.X + dx, c.Center.Y + dy})
			}
		}
	}
	return pts
}
