// Package layout holds board geometry in logical pixels and maps cursor
// positions to rods and disks.
package layout

import (
	"image"

	"hanoi/internal/core"
	"hanoi/internal/hanoi"
)

const (
	BoardWidth  = 600
	BoardHeight = 370

	PlatformX = 25
	PlatformY = 300
	PlatformW = 550
	PlatformH = 5

	RodFirstX  = 150
	RodSpacing = 150
	RodWidth   = 10
	RodTop     = 100
	RodHeight  = 200

	// DropReach is how far left or right of a rod a release still counts as
	// over that rod.
	DropReach = 50
	// GrabPadding grows a top disk's bounds when testing for a press.
	GrabPadding = 10

	buttonY = 320
	buttonW = 100
	buttonH = 30
)

// Board returns the logical size of the playing area.
func Board() core.Size { return core.Size{W: BoardWidth, H: BoardHeight} }

// Counter is the baseline origin of the move counter text.
var Counter = image.Pt(20, 30)

// RodX returns the horizontal center of rod i.
func RodX(i int) int { return RodFirstX + i*RodSpacing }

// Platform returns the base the rods stand on.
func Platform() image.Rectangle {
	return image.Rect(PlatformX, PlatformY, PlatformX+PlatformW, PlatformY+PlatformH)
}

// Rod returns the drawn bounds of rod i.
func Rod(i int) image.Rectangle {
	x := RodX(i) - RodWidth/2
	return image.Rect(x, RodTop, x+RodWidth, RodTop+RodHeight)
}

// Disk returns the bounds of d resting at stack index k (0 = bottom) on rod i.
func Disk(i, k int, d hanoi.Disk) image.Rectangle {
	x := RodX(i) - d.Width/2
	y := PlatformY - (k+1)*d.Height
	return image.Rect(x, y, x+d.Width, y+d.Height)
}

// Dragged returns the bounds of d centered on the cursor.
func Dragged(d hanoi.Disk, cursor image.Point) image.Rectangle {
	x := cursor.X - d.Width/2
	y := cursor.Y - d.Height/2
	return image.Rect(x, y, x+d.Width, y+d.Height)
}

// RodAt maps a horizontal position to the rod whose drop zone contains it,
// or hanoi.NoRod.
func RodAt(x int) int {
	for i := 0; i < hanoi.RodCount; i++ {
		cx := RodX(i)
		if x >= cx-DropReach && x <= cx+DropReach {
			return i
		}
	}
	return hanoi.NoRod
}

// TopDiskAt returns the rod whose top disk lies under pt, or hanoi.NoRod.
func TopDiskAt(g *hanoi.Game, pt image.Point) int {
	for i := 0; i < hanoi.RodCount; i++ {
		disks := g.Rod(i)
		if len(disks) == 0 {
			continue
		}
		k := len(disks) - 1
		r := Disk(i, k, disks[k]).Inset(-GrabPadding)
		if pt.In(r) {
			return i
		}
	}
	return hanoi.NoRod
}

// HintButton is the left button of the row under the platform.
func HintButton() image.Rectangle { return button(130) }

// ResetButton is the middle button under the platform.
func ResetButton() image.Rectangle { return button(250) }

// AutoplayButton is the right button under the platform.
func AutoplayButton() image.Rectangle { return button(370) }

func button(x int) image.Rectangle {
	return image.Rect(x, buttonY, x+buttonW, buttonY+buttonH)
}
