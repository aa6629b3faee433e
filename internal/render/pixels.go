package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
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

// fillGrayRGBA maps a scalar mask onto a black-to-white ramp stretched over
// the mask's own range. A flat mask renders mid gray.
func fillGrayRGBA(buf []byte, mask []float32, alpha uint8) {
	if len(mask) == 0 {
		return
	}
	lo, hi := mask[0], mask[0]
	for _, v := range mask[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	for i, v := range mask {
		level := uint8(128)
		if span > 0 {
			level = uint8((v-lo)/span*255 + 0.5)
		}
		base := i * 4
		buf[base+0] = level
		buf[base+1] = level
		buf[base+2] = level
		buf[base+3] = alpha
	}
}
