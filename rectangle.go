package flatgl

// Rectangle is an axis-aligned quad with its origin at the top-left corner.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// NewRectangle returns a rectangle with the top-left corner at (x, y).
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{x, y, width, height}
}

// NewCenteredRectangle returns a rectangle centered at (x, y).
func NewCenteredRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{x - width/2, y - height/2, width, height}
}

func (r Rectangle) Center() Vector {
	return Vector{r.X + r.Width/2, r.Y + r.Height/2}
}

// ContainsPoint reports whether the point lies inside the rectangle,
// edges included.
func (r Rectangle) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether the two rectangles overlap, edges included.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.X <= other.X+other.Width && r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height && r.Y+r.Height >= other.Y
}

// Triangulate splits the rectangle into the two triangles of the standard
// quad pattern, winding through the top-left and bottom-right diagonal.
func (r Rectangle) Triangulate() []*Triangle {
	tl := Vector{r.X, r.Y}
	bl := Vector{r.X, r.Y + r.Height}
	br := Vector{r.X + r.Width, r.Y + r.Height}
	tr := Vector{r.X + r.Width, r.Y}
	return []*Triangle{
		NewTriangleForPoints(tl, bl, br),
		NewTriangleForPoints(tl, br, tr),
	}
}
