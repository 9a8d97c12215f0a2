//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"hanoi/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Dialog draws a modal prompt over the board and reports which choice was
// clicked.
type Dialog struct {
	board core.Size
	pixel *ebiten.Image
}

// NewDialog constructs a dialog centered on a board of the given size.
func NewDialog(board core.Size) *Dialog {
	d := &Dialog{board: board}
	d.pixel = ebiten.NewImage(1, 1)
	d.pixel.Fill(color.White)
	return d
}

// Update returns the index of the choice clicked this frame. Enter picks the
// first choice.
func (d *Dialog) Update(p Prompt) (int, bool) {
	if len(p.Choices) > 0 && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return 0, true
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	mx, my := ebiten.CursorPosition()
	_, buttons := dialogLayout(d.board, p.Choices)
	for i, b := range buttons {
		if b.Hit(image.Pt(mx, my)) {
			return i, true
		}
	}
	return 0, false
}

// Draw dims the board and paints the prompt panel.
func (d *Dialog) Draw(screen *ebiten.Image, p Prompt) {
	fillRect(screen, d.pixel, image.Rect(0, 0, d.board.W, d.board.H), color.RGBA{A: 140})

	panel, buttons := dialogLayout(d.board, p.Choices)
	fillRect(screen, d.pixel, panel, color.RGBA{R: 16, G: 16, B: 20, A: 240})

	face := basicfont.Face7x13
	titleBounds := text.BoundString(face, p.Title)
	tx := panel.Min.X + (panel.Dx()-titleBounds.Dx())/2
	text.Draw(screen, p.Title, face, tx, panel.Min.Y+dialogPadding+headerBaseline, color.RGBA{R: 230, G: 230, B: 240, A: 255})

	msgBounds := text.BoundString(face, p.Message)
	mx := panel.Min.X + (panel.Dx()-msgBounds.Dx())/2
	text.Draw(screen, p.Message, face, mx, panel.Min.Y+dialogPadding+headerBaseline+2*infoLineHeight, color.RGBA{R: 190, G: 190, B: 200, A: 255})

	for _, b := range buttons {
		drawButton(screen, d.pixel, b.Rect, b.Label, b.Enabled)
	}
}

// ButtonBar draws a row of board buttons and reports clicks on them.
type ButtonBar struct {
	pixel *ebiten.Image
}

// NewButtonBar allocates the shared drawing resources.
func NewButtonBar() *ButtonBar {
	b := &ButtonBar{pixel: ebiten.NewImage(1, 1)}
	b.pixel.Fill(color.White)
	return b
}

// Clicked returns the index of the button pressed this frame.
func (b *ButtonBar) Clicked(buttons []Button) (int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	mx, my := ebiten.CursorPosition()
	for i, btn := range buttons {
		if btn.Hit(image.Pt(mx, my)) {
			return i, true
		}
	}
	return 0, false
}

// Draw paints every button.
func (b *ButtonBar) Draw(screen *ebiten.Image, buttons []Button) {
	for _, btn := range buttons {
		drawButton(screen, b.pixel, btn.Rect, btn.Label, btn.Enabled)
	}
}
