// Package geometry provides the integer Point/Size/Rectangle/Displacement
// primitives shared by the layout, gesture, and animation packages.
package geometry

// Point is a location in either workspace-local or screen coordinates,
// depending on context.
type Point struct {
	X, Y int
}

// Add translates a point by a displacement.
func (p Point) Add(d Displacement) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Sub returns the displacement from other to p.
func (p Point) Sub(other Point) Displacement {
	return Displacement{DX: p.X - other.X, DY: p.Y - other.Y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height int
}

// WithWidth returns a copy of s with Width replaced.
func (s Size) WithWidth(width int) Size {
	s.Width = width
	return s
}

// WithHeight returns a copy of s with Height replaced.
func (s Size) WithHeight(height int) Size {
	s.Height = height
	return s
}

// Displacement is a relative translation, as opposed to an absolute Point.
type Displacement struct {
	DX, DY int
}

// Rectangle is an axis-aligned rectangle described by its top-left corner
// and size.
type Rectangle struct {
	TopLeft Point
	Size    Size
}

// NewRectangle builds a Rectangle from a top-left corner and size.
func NewRectangle(topLeft Point, size Size) Rectangle {
	return Rectangle{TopLeft: topLeft, Size: size}
}

// Left, Top, Right, Bottom return the rectangle's edges.
func (r Rectangle) Left() int   { return r.TopLeft.X }
func (r Rectangle) Top() int    { return r.TopLeft.Y }
func (r Rectangle) Right() int  { return r.TopLeft.X + r.Size.Width }
func (r Rectangle) Bottom() int { return r.TopLeft.Y + r.Size.Height }

// Width and Height expose the rectangle's extent.
func (r Rectangle) Width() int  { return r.Size.Width }
func (r Rectangle) Height() int { return r.Size.Height }

// CenterX returns the x-coordinate of the rectangle's horizontal center.
func (r Rectangle) CenterX() int {
	return r.TopLeft.X + r.Size.Width/2
}

// Contains reports whether point lies within the rectangle, using
// half-open intervals on both axes: [left, right) x [top, bottom).
func (r Rectangle) Contains(point Point) bool {
	return point.X >= r.Left() && point.X < r.Right() &&
		point.Y >= r.Top() && point.Y < r.Bottom()
}

// Translate returns a new rectangle with the top-left moved by d; size is
// unaffected.
func (r Rectangle) Translate(d Displacement) Rectangle {
	return Rectangle{TopLeft: r.TopLeft.Add(d), Size: r.Size}
}

// WithSize returns a copy of r with its size replaced; top-left is
// unaffected.
func (r Rectangle) WithSize(size Size) Rectangle {
	r.Size = size
	return r
}

// WithTopLeft returns a copy of r with its top-left replaced; size is
// unaffected.
func (r Rectangle) WithTopLeft(topLeft Point) Rectangle {
	r.TopLeft = topLeft
	return r
}
