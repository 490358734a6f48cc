package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"falling-sand/internal/sand"
)

func TestRenderGridShape(t *testing.T) {
	r := NewRenderer(sand.DefaultTable().Palette())
	cases := []struct {
		w, h      int
		wantLines int
	}{
		{4, 4, 2},
		{5, 3, 2},
		{1, 1, 1},
		{7, 10, 5},
	}
	for _, tc := range cases {
		cells := make([]uint8, tc.w*tc.h)
		for i := range cells {
			cells[i] = uint8(i % int(sand.MaterialCount))
		}
		out := r.RenderGrid(cells, tc.w, tc.h, nil)
		lines := strings.Split(out, "\n")
		if len(lines) != tc.wantLines {
			t.Fatalf("%dx%d: %d lines, want %d", tc.w, tc.h, len(lines), tc.wantLines)
		}
		for i, line := range lines {
			if got := lipgloss.Width(line); got != tc.w {
				t.Fatalf("%dx%d line %d width %d, want %d", tc.w, tc.h, i, got, tc.w)
			}
		}
	}
}

func TestRenderGridRejectsShortInput(t *testing.T) {
	r := NewRenderer(nil)
	if out := r.RenderGrid(make([]uint8, 3), 2, 2, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestRenderGridCachesStylePerColorPair(t *testing.T) {
	r := NewRenderer(sand.DefaultTable().Palette())
	cells := []uint8{
		1, 1, 2, 2,
		1, 1, 2, 2,
	}
	r.RenderGrid(cells, 4, 2, nil)
	if len(r.styles) != 2 {
		t.Fatalf("styles = %d, want 2", len(r.styles))
	}
	cursor := sand.Brush{Radius: 1}.Cursor(sand.Point{X: 0, Y: 0})
	r.RenderGrid(cells, 4, 2, &cursor)
	if _, ok := r.styles[cellPair{top: cursorColor, bottom: r.palette[sand.Sand]}]; !ok {
		t.Fatalf("cursor cell was not highlighted")
	}
}

func TestColorOfUsesBackgroundForAir(t *testing.T) {
	r := NewRenderer(sand.DefaultTable().Palette())
	if got := r.colorOf(uint8(sand.Air)); got != defaultBackground {
		t.Fatalf("air color = %v", got)
	}
	if got := r.colorOf(200); got != defaultBackground {
		t.Fatalf("out of range color = %v", got)
	}
	if got := r.colorOf(uint8(sand.Water)); got != (color.RGBA{101, 192, 220, 255}) {
		t.Fatalf("water color = %v", got)
	}
}

func TestHex(t *testing.T) {
	if got := hex(color.RGBA{R: 0xEC, G: 0xC4, B: 0x83, A: 0xFF}); got != "#ECC483" {
		t.Fatalf("hex = %q", got)
	}
}

func TestBackgroundMatchesWindow(t *testing.T) {
	if want := (color.RGBA{R: 93, G: 88, B: 90, A: 255}); defaultBackground != want {
		t.Fatalf("background = %v, want %v", defaultBackground, want)
	}
}
