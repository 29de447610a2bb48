package layout

// Edges holds one length per side of a box. The keyboard's outer margins
// (the edge spacer thicknesses) are carried as Edges.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// NewEdges creates Edges in top, right, bottom, left order.
func NewEdges(top, right, bottom, left float64) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Horizontal is the total of the left and right edges.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical is the total of the top and bottom edges.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}
