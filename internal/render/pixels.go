package render

import "image/color"

// fillPaletteRGBA converts material ordinals into RGBA pixels using a palette.
// Ordinals past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// withBackground returns a copy of palette where fully transparent entries
// are replaced by bg, so empty cells draw as the window background.
func withBackground(palette []color.RGBA, bg color.RGBA) []color.RGBA {
	out := make([]color.RGBA, len(palette))
	for i, col := range palette {
		if col.A == 0 {
			col = bg
		}
		out[i] = col
	}
	return out
}
