package flatgl

import (
	"sync"
	"testing"
)

func gridMesh(n int) *Mesh {
	m := NewEmptyMesh()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			cell := NewRectangle(float64(x), float64(y), 1, 1)
			m.Add(NewTriangleMesh(cell.Triangulate()))
		}
	}
	return m
}

func TestProcessMeshMatchesSequential(t *testing.T) {
	mesh := gridMesh(5)
	shader := NewSolidColorShader(Translate(2, 3, 0), Scale(0.5, 0.5, 1), HexColor("ff8844"))

	var want []Vertex
	for _, v := range mesh.Vertices() {
		want = append(want, shader.Vertex(v))
	}

	for _, workers := range []int{0, 1, 3, 16} {
		dc := NewContext(Identity())
		dc.Workers = workers
		got := dc.ProcessMesh(shader, mesh)
		if len(got) != len(want) {
			t.Fatalf("workers=%d: len = %d, want %d", workers, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: vertex %d = %+v, want %+v", workers, i, got[i], want[i])
			}
		}
	}
}

func TestProcessMeshEmpty(t *testing.T) {
	dc := NewContext(Identity())
	shader := NewSolidColorShader(Identity(), Identity(), White)
	if got := dc.ProcessMesh(shader, NewEmptyMesh()); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestDrawObjectBindsUniforms(t *testing.T) {
	dc := NewContext(Scale(2, 2, 1))
	o := NewObject(UnitQuad(), Translate(10, 20, 0), HexColor("ff0000"))

	out := dc.DrawObject(o)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}
	// Unit quad origin: transform then projection.
	if want := (VectorW{20, 40, 0, 1}); out[0].Output != want {
		t.Errorf("Output = %+v, want %+v", out[0].Output, want)
	}
	for i, v := range out {
		if v.Color != o.Color {
			t.Errorf("vertex %d color = %+v, want %+v", i, v.Color, o.Color)
		}
	}
	// The object itself is untouched by the draw.
	if o.Mesh.Triangles[0].V1.Output != (VectorW{}) {
		t.Errorf("draw wrote into the object's mesh")
	}
}

func TestDrawObjectsOrder(t *testing.T) {
	dc := NewContext(Identity())
	objects := []*Object{
		NewObject(UnitQuad(), Translate(1, 0, 0), White),
		NewObject(UnitQuad(), Translate(2, 0, 0), Black),
	}
	out := dc.DrawObjects(objects)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0][0].Output.X != 1 || out[1][0].Output.X != 2 {
		t.Errorf("outputs out of order: %v, %v", out[0][0].Output.X, out[1][0].Output.X)
	}
}

// Draws on a shared context must not interfere: each invocation binds its
// own uniforms.
func TestConcurrentDraws(t *testing.T) {
	dc := NewContext(LetterboxProjection(1280, 720, 1280, 720))
	objects := make([]*Object, 16)
	for i := range objects {
		rect := NewCenteredRectangle(float64(80*i), 360, 15, 15)
		objects[i] = NewRectangleObject(rect, White)
	}
	want := dc.DrawObjects(objects)

	got := make([][]Vertex, len(objects))
	var wg sync.WaitGroup
	wg.Add(len(objects))
	for i, o := range objects {
		go func(i int, o *Object) {
			got[i] = dc.DrawObject(o)
			wg.Done()
		}(i, o)
	}
	wg.Wait()

	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("object %d vertex %d = %+v, want %+v", i, j, got[i][j], want[i][j])
			}
		}
	}
}
