package flatgl

import (
	"runtime"
	"sync"
)

// Context drives vertex buffers through a vertex stage. It holds the
// projection shared by every draw and nothing else; per-draw uniforms are
// bound into a fresh shader value for each object, so concurrent draws
// never share mutable state.
type Context struct {
	Projection Matrix
	Workers    int // goroutines per draw; 0 means runtime.NumCPU()
}

func NewContext(projection Matrix) *Context {
	return &Context{Projection: projection}
}

func (dc *Context) workers() int {
	if dc.Workers > 0 {
		return dc.Workers
	}
	return runtime.NumCPU()
}

// ProcessMesh runs the shader over every vertex of the mesh and returns the
// outputs in buffer order, three per triangle. Vertices are independent, so
// the triangles are spread over a strided worker pool; each worker writes
// only its own output slots.
func (dc *Context) ProcessMesh(shader Shader, mesh *Mesh) []Vertex {
	out := make([]Vertex, len(mesh.Triangles)*3)
	wn := dc.workers()
	var wg sync.WaitGroup
	wg.Add(wn)
	for wi := 0; wi < wn; wi++ {
		go func(wi int) {
			for i := wi; i < len(mesh.Triangles); i += wn {
				t := mesh.Triangles[i]
				out[i*3+0] = shader.Vertex(t.V1)
				out[i*3+1] = shader.Vertex(t.V2)
				out[i*3+2] = shader.Vertex(t.V3)
			}
			wg.Done()
		}(wi)
	}
	wg.Wait()
	return out
}

// DrawObject binds the object's transform and color together with the
// context's projection into a shader for this invocation only, then
// processes the object's mesh.
func (dc *Context) DrawObject(o *Object) []Vertex {
	shader := NewSolidColorShader(o.Transform, dc.Projection, o.Color)
	return dc.ProcessMesh(shader, o.Mesh)
}

// DrawObjects draws each object in turn, returning one output buffer per
// object.
func (dc *Context) DrawObjects(objects []*Object) [][]Vertex {
	out := make([][]Vertex, len(objects))
	for i, o := range objects {
		out[i] = dc.DrawObject(o)
	}
	return out
}
