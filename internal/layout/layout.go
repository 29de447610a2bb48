package layout

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect returns a Rect of this size at the origin.
func (s Size) Rect() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}
