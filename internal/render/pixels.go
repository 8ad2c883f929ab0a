package render

import (
	"image/color"

	"fluxsim/pkg/particle"
)

// FillRGBA converts cell values into RGBA pixels using a palette. Values past
// the end of the palette use its last entry. When the palette is empty the
// buffer is cleared to transparent black.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
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

// EncodeCells writes the kinds of g into dst as display values and returns
// dst, growing it when needed.
func EncodeCells(dst []uint8, g *particle.Grid) []uint8 {
	cells := g.Cells()
	if cap(dst) < len(cells) {
		dst = make([]uint8, len(cells))
	}
	dst = dst[:len(cells)]
	for i, k := range cells {
		dst[i] = uint8(k)
	}
	return dst
}
