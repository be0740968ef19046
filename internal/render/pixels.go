package render

import "image/color"

// Display values composed by the GUI before blitting. Wormhole endpoints
// get their own values so the palette can tint them.
const (
	CellDead uint8 = iota
	CellAlive
	CellHoleDead
	CellHoleAlive
)

// DefaultPalette maps display values to colors: dead black, alive white,
// wormhole endpoints tinted.
func DefaultPalette() []color.RGBA {
	return []color.RGBA{
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		{R: 0x28, G: 0x28, B: 0x96, A: 0xff},
		{R: 0x64, G: 0xc8, B: 0xff, A: 0xff},
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the palette end clamp to its last entry; an empty palette
// clears the buffer to transparent black.
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
