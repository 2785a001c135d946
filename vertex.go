package flatgl

// Vertex is one vertex flowing through the pipeline. Position is the input
// attribute; Output and Color are filled in by the vertex stage and read by
// whatever consumes the stage's results.
type Vertex struct {
	Position Vector
	Output   VectorW
	Color    Color
}

// NewVertex returns a vertex at the given position.
func NewVertex(x, y float64) Vertex {
	return Vertex{Position: Vector{x, y}}
}
