package render

import "image/color"

const (
	shadeTop    = 1.25
	shadeBottom = 0.75
)

// fillDiskRGBA paints a w*h disk sprite into buf: base shaded from light at
// the top edge to dark at the bottom, framed by a one-pixel outline.
func fillDiskRGBA(buf []byte, w, h int, base, outline color.RGBA) {
	for y := 0; y < h; y++ {
		factor := shadeTop
		if h > 1 {
			factor = shadeTop + (shadeBottom-shadeTop)*float64(y)/float64(h-1)
		}
		row := color.RGBA{
			R: scaleComponent(base.R, factor),
			G: scaleComponent(base.G, factor),
			B: scaleComponent(base.B, factor),
			A: base.A,
		}
		for x := 0; x < w; x++ {
			col := row
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				col = outline
			}
			i := (y*w + x) * 4
			buf[i+0] = col.R
			buf[i+1] = col.G
			buf[i+2] = col.B
			buf[i+3] = col.A
		}
	}
}

func scaleComponent(v uint8, factor float64) uint8 {
	scaled := float64(v)*factor + 0.5
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
