package layout

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Rect is a frame produced by the solver. X and Y are the top-left corner.
// Coordinates are points, not cells, and may be fractional.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if other lies within r, allowing tol of
// solver rounding error on every edge.
func (r Rect) ContainsRect(other Rect, tol float64) bool {
	return other.X >= r.X-tol && other.Y >= r.Y-tol &&
		other.Right() <= r.Right()+tol && other.Bottom() <= r.Bottom()+tol
}

// Inset shrinks r by edges. The result may have a negative size when the
// edges do not fit.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Horizontal(),
		Height: r.Height - edges.Vertical(),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Scale returns r with every coordinate multiplied by (sx, sy).
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{X: r.X * sx, Y: r.Y * sy, Width: r.Width * sx, Height: r.Height * sy}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Overlaps returns true if the rectangles share more than tol of area
// along both axes. Touching edges do not count as overlapping.
func (r Rect) Overlaps(other Rect, tol float64) bool {
	in := r.Intersect(other)
	return in.Width > tol && in.Height > tol
}

// ApproxEqual reports whether every coordinate of r is within tol of other.
func (r Rect) ApproxEqual(other Rect, tol float64) bool {
	return floats.EqualApprox(
		[]float64{r.X, r.Y, r.Width, r.Height},
		[]float64{other.X, other.Y, other.Width, other.Height},
		tol,
	)
}

// Cells rounds r onto an integer grid. Edges are rounded rather than sizes
// so that adjacent frames stay adjacent after rounding.
func (r Rect) Cells() Cells {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.Right()))
	y1 := int(math.Round(r.Bottom()))
	return Cells{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Cells is a rectangle on an integer grid, used when drawing frames to a
// terminal.
type Cells struct {
	X, Y          int
	Width, Height int
}

// Right returns the x-coordinate of the right edge (exclusive).
func (c Cells) Right() int {
	return c.X + c.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (c Cells) Bottom() int {
	return c.Y + c.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (c Cells) IsEmpty() bool {
	return c.Width <= 0 || c.Height <= 0
}
