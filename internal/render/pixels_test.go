package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{0, 0, 0, 0},
		{236, 196, 131, 255},
		{101, 192, 220, 255},
	}
	cells := []uint8{0, 1, 2, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	want := []byte{
		0, 0, 0, 0,
		236, 196, 131, 255,
		101, 192, 220, 255,
		101, 192, 220, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	fillPaletteRGBA(buf, []uint8{1, 2}, nil)
	want := []byte{0, 0, 0, 0, 0, 0, 0, 0, 9}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestWithBackground(t *testing.T) {
	bg := color.RGBA{10, 10, 14, 255}
	in := []color.RGBA{{0, 0, 0, 0}, {1, 2, 3, 255}}
	out := withBackground(in, bg)
	if out[0] != bg || out[1] != in[1] {
		t.Fatalf("got %v", out)
	}
	if in[0].A != 0 {
		t.Fatalf("input palette modified")
	}
}
