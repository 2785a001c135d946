package flatgl

import "github.com/go-gl/mathgl/mgl64"

// SolidShader is SolidColorShader for callers whose matrix math lives in
// mgl64. The uniforms are converted as they are applied; the stage itself
// is the same.
type SolidShader struct {
	Transform  mgl64.Mat4
	Projection mgl64.Mat4
	Color      Color
}

func NewSolidShader(transform, projection mgl64.Mat4, color Color) *SolidShader {
	return &SolidShader{transform, projection, color}
}

func (s *SolidShader) Vertex(v Vertex) Vertex {
	world := MatrixFromMGL(s.Transform).MulPositionW(v.Position)
	v.Output = MatrixFromMGL(s.Projection).MulVectorW(world)
	v.Color = s.Color
	return v
}
