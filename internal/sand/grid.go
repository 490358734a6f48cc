package sand

// Point is a grid coordinate. Y grows downwards.
type Point struct {
	X, Y int
}

// Velocity is measured in cells per tick. Only the sign of X is meaningful.
type Velocity struct {
	X, Y int
}

// Cell is the atomic simulation unit.
type Cell struct {
	Velocity     Velocity
	Material     Material
	Processed    bool
	Displaceable bool
}

// AirCell returns the default empty cell.
func AirCell() Cell {
	return Cell{Material: Air, Processed: true, Displaceable: true}
}

// Grid is a fixed-size row-major array of cells with row 0 at the top.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a grid filled with air.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h)}
	g.Fill(AirCell())
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y), or nil when out of range.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[y*g.w+x]
}

// Swap exchanges the cells at a and b. Both must be in range.
func (g *Grid) Swap(ax, ay, bx, by int) {
	i, j := ay*g.w+ax, by*g.w+bx
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Fill overwrites every cell with c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// ResetProcessed clears the per-tick processed flag on every cell.
func (g *Grid) ResetProcessed() {
	for i := range g.cells {
		g.cells[i].Processed = false
	}
}

// SetObstacle places an immovable cell of material m at (x, y).
func (g *Grid) SetObstacle(x, y int, m Material) {
	if c := g.At(x, y); c != nil {
		*c = Cell{Material: m, Processed: true, Displaceable: false}
	}
}

// Snapshot calls fn for every cell in row-major order. fn must not mutate the grid.
func (g *Grid) Snapshot(fn func(x, y int, m Material)) {
	for y := 0; y < g.h; y++ {
		row := g.cells[y*g.w : (y+1)*g.w]
		for x := range row {
			fn(x, y, row[x].Material)
		}
	}
}

// Materials writes the material ordinal of every cell into dst, which must
// hold at least Width*Height entries.
func (g *Grid) Materials(dst []uint8) {
	for i := range g.cells {
		dst[i] = uint8(g.cells[i].Material)
	}
}

// Census counts cells per material.
func (g *Grid) Census() [MaterialCount]int {
	var counts [MaterialCount]int
	for i := range g.cells {
		counts[g.cells[i].Material]++
	}
	return counts
}
