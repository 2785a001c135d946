package flatgl

// Object is one draw invocation's worth of input: a mesh plus the uniforms
// that stay constant while its vertices are processed. Objects are plain
// data; nothing mutates them during a draw.
type Object struct {
	Mesh      *Mesh
	Transform Matrix
	Color     Color
}

// NewEmptyObject returns an object with an identity transform.
func NewEmptyObject() *Object {
	return &Object{Transform: Identity(), Color: White}
}

func NewObject(mesh *Mesh, transform Matrix, color Color) *Object {
	return &Object{mesh, transform, color}
}

// NewRectangleObject returns an object whose mesh is the rectangle itself,
// already in shared-space coordinates, with an identity transform.
func NewRectangleObject(rect Rectangle, color Color) *Object {
	return &Object{NewTriangleMesh(rect.Triangulate()), Identity(), color}
}
