package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"falling-sand/internal/sand"
)

// upperHalf draws the top grid row in the foreground color and the bottom
// row in the background color, so one terminal row shows two grid rows.
const upperHalf = "▀"

var (
	defaultBackground = color.RGBA{R: 93, G: 88, B: 90, A: 255}
	cursorColor       = color.RGBA{R: 235, G: 235, B: 245, A: 255}
)

type cellPair struct {
	top, bottom color.RGBA
}

// Renderer converts material ordinals into half-block terminal output.
// Styles are cached per color pair.
type Renderer struct {
	palette    []color.RGBA
	background color.RGBA
	styles     map[cellPair]lipgloss.Style
}

// NewRenderer returns a renderer for the given palette. Transparent entries
// draw as the background.
func NewRenderer(palette []color.RGBA) *Renderer {
	return &Renderer{
		palette:    palette,
		background: defaultBackground,
		styles:     make(map[cellPair]lipgloss.Style),
	}
}

// RenderGrid renders a w*h grid of cells into ceil(h/2) lines of w columns.
// Cells on the cursor outline are highlighted. Adjacent columns with the same
// colors share one styled run.
func (r *Renderer) RenderGrid(cells []uint8, w, h int, cursor *sand.Cursor) string {
	if w <= 0 || h <= 0 || len(cells) < w*h {
		return ""
	}
	var outline map[sand.Point]struct{}
	if cursor != nil {
		pts := cursor.Outline()
		outline = make(map[sand.Point]struct{}, len(pts))
		for _, p := range pts {
			outline[p] = struct{}{}
		}
	}
	colorAt := func(x, y int) color.RGBA {
		if y >= h {
			return r.background
		}
		if _, ok := outline[sand.Point{X: x, Y: y}]; ok {
			return cursorColor
		}
		return r.colorOf(cells[y*w+x])
	}

	var sb strings.Builder
	sb.Grow(w*h*2 + h)
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < w {
			pair := cellPair{top: colorAt(x, y), bottom: colorAt(x, y+1)}
			start := x
			for x < w && (cellPair{top: colorAt(x, y), bottom: colorAt(x, y+1)}) == pair {
				x++
			}
			sb.WriteString(r.style(pair).Render(strings.Repeat(upperHalf, x-start)))
		}
	}
	return sb.String()
}

func (r *Renderer) colorOf(c uint8) color.RGBA {
	if int(c) >= len(r.palette) {
		return r.background
	}
	col := r.palette[c]
	if col.A == 0 {
		return r.background
	}
	return col
}

func (r *Renderer) style(p cellPair) lipgloss.Style {
	if s, ok := r.styles[p]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(p.top))).
		Background(lipgloss.Color(hex(p.bottom)))
	r.styles[p] = s
	return s
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
