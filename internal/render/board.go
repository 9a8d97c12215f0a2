//go:build ebiten

package render

import (
	"image"
	"image/color"

	"hanoi/internal/hanoi"
	"hanoi/internal/layout"
	"hanoi/internal/solver"
	"hanoi/internal/theme"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Scene is the state shown in one frame.
type Scene struct {
	Game    *hanoi.Game
	Cursor  image.Point
	Hint    solver.Move
	HasHint bool
}

type spriteKey struct {
	width  int
	height int
	base   color.RGBA
}

// BoardPainter draws the platform, rods, disks, the dragged disk and the move
// counter. Disk sprites are cached per size and color.
type BoardPainter struct {
	theme   theme.Theme
	pixel   *ebiten.Image
	sprites map[spriteKey]*ebiten.Image
}

// NewBoardPainter allocates a painter using the given palette.
func NewBoardPainter(t theme.Theme) *BoardPainter {
	p := &BoardPainter{theme: t, sprites: map[spriteKey]*ebiten.Image{}}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Theme returns the active palette.
func (p *BoardPainter) Theme() theme.Theme { return p.theme }

// SetTheme swaps the palette and drops cached sprites.
func (p *BoardPainter) SetTheme(t theme.Theme) {
	p.theme = t
	for k, img := range p.sprites {
		img.Dispose()
		delete(p.sprites, k)
	}
}

// Draw renders the scene onto the board area of dst.
func (p *BoardPainter) Draw(dst *ebiten.Image, s Scene) {
	th := p.theme
	p.FillRect(dst, image.Rect(0, 0, layout.BoardWidth, layout.BoardHeight), th.Background)
	p.FillRect(dst, layout.Platform(), th.Platform)

	for i := 0; i < hanoi.RodCount; i++ {
		col := th.Rod
		if s.HasHint && (i == s.Hint.From || i == s.Hint.To) {
			col = th.Hint
		}
		p.FillRect(dst, layout.Rod(i), col)
	}

	g := s.Game
	held, from, holding := g.Lifted()
	for i := 0; i < hanoi.RodCount; i++ {
		disks := g.Rod(i)
		if holding && i == from {
			disks = disks[:len(disks)-1]
		}
		for k, d := range disks {
			p.drawDisk(dst, layout.Disk(i, k, d), th.DiskColor(d.Size, g.Disks()))
		}
	}
	if holding {
		p.drawDisk(dst, layout.Dragged(held, s.Cursor), th.Dragged)
	}

	text.Draw(dst, CounterText(g), basicfont.Face7x13, layout.Counter.X, layout.Counter.Y, th.Text)
}

// FillRect paints r with a solid color.
func (p *BoardPainter) FillRect(dst *ebiten.Image, r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(p.pixel, op)
}

func (p *BoardPainter) drawDisk(dst *ebiten.Image, r image.Rectangle, base color.RGBA) {
	img := p.sprite(r.Dx(), r.Dy(), base)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	dst.DrawImage(img, op)
}

func (p *BoardPainter) sprite(w, h int, base color.RGBA) *ebiten.Image {
	key := spriteKey{width: w, height: h, base: base}
	if img, ok := p.sprites[key]; ok {
		return img
	}
	buf := make([]byte, 4*w*h)
	fillDiskRGBA(buf, w, h, base, p.theme.Outline)
	img := ebiten.NewImage(w, h)
	img.ReplacePixels(buf)
	p.sprites[key] = img
	return img
}
