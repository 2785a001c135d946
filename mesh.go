package flatgl

import "github.com/fogleman/simplify"

// Triangle is three vertices. Vertices are never shared between triangles;
// the mesh is a plain vertex buffer, three vertices per triangle.
type Triangle struct {
	V1, V2, V3 Vertex
}

func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	return &Triangle{v1, v2, v3}
}

func NewTriangleForPoints(p1, p2, p3 Vector) *Triangle {
	t := Triangle{}
	t.V1.Position = p1
	t.V2.Position = p2
	t.V3.Position = p3
	return &t
}

// Mesh mesh of triangles
type Mesh struct {
	Triangles []*Triangle
}

func NewEmptyMesh() *Mesh {
	return &Mesh{}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles}
}

// UnitQuad returns the unit square as two triangles, the fixed vertex
// buffer a caller scales and positions with its transform matrix.
func UnitQuad() *Mesh {
	return NewTriangleMesh(Rectangle{0, 0, 1, 1}.Triangulate())
}

func (m *Mesh) Add(b *Mesh) {
	m.Triangles = append(m.Triangles, b.Triangles...)
}

func (m *Mesh) Copy() *Mesh {
	triangles := make([]*Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		a := *t
		triangles[i] = &a
	}
	return NewTriangleMesh(triangles)
}

// Vertices flattens the mesh into a vertex buffer, three vertices per
// triangle, in triangle order.
func (m *Mesh) Vertices() []Vertex {
	vertices := make([]Vertex, len(m.Triangles)*3)
	for i, t := range m.Triangles {
		vertices[i*3+0] = t.V1
		vertices[i*3+1] = t.V2
		vertices[i*3+2] = t.V3
	}
	return vertices
}

// BoundingBox returns the smallest rectangle containing every position.
// Returns the zero rectangle for an empty mesh.
func (m *Mesh) BoundingBox() Rectangle {
	if len(m.Triangles) == 0 {
		return Rectangle{}
	}
	min := m.Triangles[0].V1.Position
	max := min
	for _, t := range m.Triangles {
		min = min.Min(t.V1.Position).Min(t.V2.Position).Min(t.V3.Position)
		max = max.Max(t.V1.Position).Max(t.V2.Position).Max(t.V3.Position)
	}
	return Rectangle{min.X, min.Y, max.X - min.X, max.Y - min.Y}
}

// Simplify reduces the triangle count to roughly factor times the current
// count, collapsing redundant vertices. Positions ride through the
// simplifier on the z = 0 plane, matching the pipeline's promotion.
func (m *Mesh) Simplify(factor float64) {
	st := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		v1 := simplify.Vector{X: t.V1.Position.X, Y: t.V1.Position.Y}
		v2 := simplify.Vector{X: t.V2.Position.X, Y: t.V2.Position.Y}
		v3 := simplify.Vector{X: t.V3.Position.X, Y: t.V3.Position.Y}
		st[i] = simplify.NewTriangle(v1, v2, v3)
	}
	sm := simplify.NewMesh(st).Simplify(factor)
	m.Triangles = make([]*Triangle, len(sm.Triangles))
	for i, t := range sm.Triangles {
		p1 := Vector{t.V1.X, t.V1.Y}
		p2 := Vector{t.V2.X, t.V2.Y}
		p3 := Vector{t.V3.X, t.V3.Y}
		m.Triangles[i] = NewTriangleForPoints(p1, p2, p3)
	}
}
