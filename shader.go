package flatgl

// Shader is the programmable per-vertex stage of the pipeline.
//
// Vertex receives a vertex with Position set and returns it with Output
// holding the clip-space position and Color holding the color for the next
// stage. Implementations hold only read-only uniform state for the duration
// of a draw invocation, so Vertex may be called from any number of
// goroutines at once with no synchronization.
type Shader interface {
	Vertex(Vertex) Vertex
}
