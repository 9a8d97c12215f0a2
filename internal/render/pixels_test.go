package render

import (
	"image/color"
	"testing"
)

func TestFillDiskRGBAOutlineAndShading(t *testing.T) {
	const w, h = 6, 5
	buf := make([]byte, 4*w*h)
	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	outline := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	fillDiskRGBA(buf, w, h, base, outline)

	at := func(x, y int) color.RGBA {
		i := (y*w + x) * 4
		return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
	}
	for _, p := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}, {2, 0}, {0, 2}} {
		if got := at(p[0], p[1]); got != outline {
			t.Fatalf("edge pixel %v = %v, want outline", p, got)
		}
	}
	upper, lower := at(2, 1), at(2, h-2)
	if upper.R <= lower.R {
		t.Fatalf("shading should darken downward: upper %v lower %v", upper, lower)
	}
	if upper.A != 255 || lower.A != 255 {
		t.Fatal("interior alpha must follow the base color")
	}
}

func TestScaleComponentSaturates(t *testing.T) {
	if got := scaleComponent(250, 1.25); got != 255 {
		t.Fatalf("scaleComponent(250, 1.25) = %d", got)
	}
	if got := scaleComponent(100, 0.75); got != 75 {
		t.Fatalf("scaleComponent(100, 0.75) = %d", got)
	}
}
