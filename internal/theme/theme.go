// Package theme provides named color palettes for the board.
package theme

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// DefaultName is the palette used when none is configured.
const DefaultName = "classic"

// Theme is a named palette. Disk colors are interpolated across Stops from
// the smallest disk to the largest.
type Theme struct {
	Name       string
	Background color.RGBA
	Platform   color.RGBA
	Rod        color.RGBA
	Outline    color.RGBA
	Text       color.RGBA
	Dragged    color.RGBA
	Hint       color.RGBA
	Stops      []color.RGBA
}

var themes = map[string]Theme{}

// Register adds a theme under its name, replacing any previous entry.
func Register(t Theme) {
	if t.Name == "" || len(t.Stops) == 0 {
		return
	}
	themes[t.Name] = t
}

// Lookup returns the theme registered under name.
func Lookup(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// Default returns the classic palette.
func Default() Theme {
	t, _ := Lookup(DefaultName)
	return t
}

// Names lists registered themes in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DiskColor returns the fill for a disk of the given size out of total.
func (t Theme) DiskColor(size, total int) color.RGBA {
	if len(t.Stops) == 1 || total <= 1 {
		return t.Stops[0]
	}
	pos := clamp01(float64(size-1) / float64(total-1))
	scaled := pos * float64(len(t.Stops)-1)
	i := int(math.Floor(scaled))
	if i >= len(t.Stops)-1 {
		return t.Stops[len(t.Stops)-1]
	}
	return lerpRGBA(t.Stops[i], t.Stops[i+1], scaled-float64(i))
}

// Hex formats c as a #rrggbb string for terminal styling.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() {
	Register(Theme{
		Name:       "classic",
		Background: color.RGBA{R: 238, G: 238, B: 238, A: 255},
		Platform:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Rod:        color.RGBA{A: 255},
		Outline:    color.RGBA{A: 255},
		Text:       color.RGBA{A: 255},
		Dragged:    color.RGBA{R: 255, A: 255},
		Hint:       color.RGBA{R: 40, G: 160, B: 80, A: 255},
		Stops:      []color.RGBA{{R: 255, G: 200, A: 255}},
	})
	Register(Theme{
		Name:       "rainbow",
		Background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
		Platform:   color.RGBA{R: 90, G: 90, B: 110, A: 255},
		Rod:        color.RGBA{R: 170, G: 170, B: 190, A: 255},
		Outline:    color.RGBA{R: 12, G: 12, B: 16, A: 255},
		Text:       color.RGBA{R: 220, G: 220, B: 230, A: 255},
		Dragged:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Hint:       color.RGBA{R: 255, G: 220, B: 60, A: 255},
		Stops: []color.RGBA{
			{R: 230, G: 60, B: 60, A: 255},
			{R: 240, G: 160, B: 40, A: 255},
			{R: 220, G: 220, B: 60, A: 255},
			{R: 70, G: 180, B: 90, A: 255},
			{R: 60, G: 120, B: 220, A: 255},
			{R: 140, G: 80, B: 200, A: 255},
		},
	})
	Register(Theme{
		Name:       "mono",
		Background: color.RGBA{R: 250, G: 250, B: 250, A: 255},
		Platform:   color.RGBA{R: 60, G: 60, B: 60, A: 255},
		Rod:        color.RGBA{R: 40, G: 40, B: 40, A: 255},
		Outline:    color.RGBA{A: 255},
		Text:       color.RGBA{A: 255},
		Dragged:    color.RGBA{R: 120, G: 120, B: 120, A: 255},
		Hint:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Stops: []color.RGBA{
			{R: 210, G: 210, B: 210, A: 255},
			{R: 70, G: 70, B: 70, A: 255},
		},
	})
}
