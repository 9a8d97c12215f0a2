package hanoi

const (
	// DiskHeight is the drawn height of every disk.
	DiskHeight = 20

	baseDiskWidth = 50
	diskWidthStep = 20
)

// Disk is a puzzle piece. Size ranks disks from 1 (smallest) upward; width
// and height are derived from it.
type Disk struct {
	Size   int
	Width  int
	Height int
}

// NewDisk returns the disk of the given rank.
func NewDisk(size int) Disk {
	return Disk{Size: size, Width: baseDiskWidth + size*diskWidthStep, Height: DiskHeight}
}

// Rod is a LIFO stack of disks. The last pushed disk is the top.
type Rod struct {
	disks []Disk
}

// Push places d on top of the rod without checking ordering.
func (r *Rod) Push(d Disk) { r.disks = append(r.disks, d) }

// Pop removes and returns the top disk.
func (r *Rod) Pop() (Disk, bool) {
	if len(r.disks) == 0 {
		return Disk{}, false
	}
	last := len(r.disks) - 1
	d := r.disks[last]
	r.disks = r.disks[:last]
	return d, true
}

// Top returns the top disk without removing it.
func (r *Rod) Top() (Disk, bool) {
	if len(r.disks) == 0 {
		return Disk{}, false
	}
	return r.disks[len(r.disks)-1], true
}

// Len reports the number of disks on the rod.
func (r *Rod) Len() int { return len(r.disks) }

// Empty reports whether the rod holds no disks.
func (r *Rod) Empty() bool { return len(r.disks) == 0 }

// Accepts reports whether d may be placed on top of the rod.
func (r *Rod) Accepts(d Disk) bool {
	top, ok := r.Top()
	return !ok || top.Width > d.Width
}

// Disks returns a copy of the stack ordered bottom to top.
func (r *Rod) Disks() []Disk { return append([]Disk(nil), r.disks...) }

// Ordered reports whether widths strictly decrease from bottom to top.
func (r *Rod) Ordered() bool {
	for i := 1; i < len(r.disks); i++ {
		if r.disks[i].Width >= r.disks[i-1].Width {
			return false
		}
	}
	return true
}

func (r *Rod) clear() { r.disks = r.disks[:0] }
