package sand

// buildScene lays out the static geometry and starting material for s.
func buildScene(g *Grid, s Scene) {
	switch s {
	case SceneBasin:
		basin(g)
	case SceneHourglass:
		basin(g)
		hourglass(g)
	}
}

// basin walls off the bottom row and both side columns with stone.
func basin(g *Grid) {
	w, h := g.Width(), g.Height()
	for x := 0; x < w; x++ {
		g.SetObstacle(x, h-1, Stone)
	}
	for y := 0; y < h; y++ {
		g.SetObstacle(0, y, Stone)
		g.SetObstacle(w-1, y, Stone)
	}
}

// hourglass adds two funnel walls meeting at mid-height around a narrow neck
// and fills the upper chamber with sand on the left and water on the right.
func hourglass(g *Grid) {
	w, h := g.Width(), g.Height()
	if w < 8 || h < 8 {
		return
	}
	mid := w / 2
	neck := max(1, w/40)
	top := h / 4
	bottom := h / 2
	span := max(bottom-top, 1)
	maxInset := (w-4)/2 - neck
	prev := 0
	for y := top; y <= bottom; y++ {
		inset := maxInset * (y - top) / span
		for i := prev; i <= inset; i++ {
			g.SetObstacle(1+i, y, Stone)
			g.SetObstacle(w-2-i, y, Stone)
		}
		prev = inset
	}
	fillTop := max(1, top-h/6)
	g.Apply(PaintCommand{
		TopLeft:     Point{2, fillTop},
		BottomRight: Point{mid - 1, top - 1},
		Mode:        PaintSet,
		Material:    Sand,
	})
	g.Apply(PaintCommand{
		TopLeft:     Point{mid, fillTop},
		BottomRight: Point{w - 3, top - 1},
		Mode:        PaintSet,
		Material:    Water,
	})
}
