package render

import "image/color"

// Palette returns the display colors for the three cell values, indexed
// by CellOff, CellOn and CellUnborn.
func Palette() []color.RGBA {
	return []color.RGBA{
		CellOff:    {R: 255, G: 255, B: 255, A: 255},
		CellOn:     {R: 0, G: 0, B: 0, A: 255},
		CellUnborn: {R: 224, G: 224, B: 224, A: 255},
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the palette's end clamp to its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
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
