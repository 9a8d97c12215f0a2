package core

// Size describes the logical dimensions of a drawable surface.
type Size struct {
	W int
	H int
}

// Add returns a size wide enough to hold s and o side by side.
func (s Size) Add(o Size) Size {
	h := s.H
	if o.H > h {
		h = o.H
	}
	return Size{W: s.W + o.W, H: h}
}
