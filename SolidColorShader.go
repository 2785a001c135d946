package flatgl

// SolidColorShader is the vertex stage for solidly filled 2D polygons.
// Transform maps local coordinates into the shared space, Projection maps
// the shared space into clip space, and Color is forwarded to every vertex
// untouched. All three are uniforms: constant across one draw invocation.
type SolidColorShader struct {
	Transform  Matrix
	Projection Matrix
	Color      Color
}

func NewSolidColorShader(transform, projection Matrix, color Color) *SolidColorShader {
	return &SolidColorShader{transform, projection, color}
}

// Vertex promotes the position onto the z = 0 plane with w = 1, applies the
// transform, then the projection. The projection is applied second; the two
// matrices are kept separate so the caller can change one without the other.
func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	world := s.Transform.MulPositionW(v.Position)
	v.Output = s.Projection.MulVectorW(world)
	v.Color = s.Color
	return v
}
