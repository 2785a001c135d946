package flatgl

import "math"

// Vector is a 2D position. Position is the only per-vertex attribute in this
// pipeline; everything else is uniform state supplied per draw invocation.
type Vector struct {
	X, Y float64
}

// V is shorthand for Vector{x, y}.
func V(x, y float64) Vector {
	return Vector{x, y}
}

func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y}
}

func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y}
}

func (a Vector) Mul(b Vector) Vector {
	return Vector{a.X * b.X, a.Y * b.Y}
}

func (a Vector) MulScalar(s float64) Vector {
	return Vector{a.X * s, a.Y * s}
}

func (a Vector) DivScalar(s float64) Vector {
	return Vector{a.X / s, a.Y / s}
}

func (a Vector) Negate() Vector {
	return Vector{-a.X, -a.Y}
}

func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y
}

func (a Vector) Length() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

func (a Vector) Distance(b Vector) float64 {
	return a.Sub(b).Length()
}

func (a Vector) Normalize() Vector {
	r := 1 / a.Length()
	return Vector{a.X * r, a.Y * r}
}

func (a Vector) Lerp(b Vector, t float64) Vector {
	return a.Add(b.Sub(a).MulScalar(t))
}

func (a Vector) Min(b Vector) Vector {
	return Vector{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
}

func (a Vector) Max(b Vector) Vector {
	return Vector{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
}

// VectorW is a homogeneous clip-space position. W is carried through
// untouched for the perspective divide in a later pipeline stage.
type VectorW struct {
	X, Y, Z, W float64
}

func (a VectorW) Add(b VectorW) VectorW {
	return VectorW{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a VectorW) Sub(b VectorW) VectorW {
	return VectorW{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (a VectorW) MulScalar(s float64) VectorW {
	return VectorW{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

func (a VectorW) DivScalar(s float64) VectorW {
	return VectorW{a.X / s, a.Y / s, a.Z / s, a.W / s}
}

func (a VectorW) Dot(b VectorW) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (a VectorW) Lerp(b VectorW, t float64) VectorW {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Vector drops the Z and W components. Useful after the perspective divide,
// when the point is back on the z = 0 plane.
func (a VectorW) Vector() Vector {
	return Vector{a.X, a.Y}
}

// PerspectiveDivide divides through by W. No guard for W == 0; the result
// follows IEEE semantics, exactly like the arithmetic that produced it.
func (a VectorW) PerspectiveDivide() Vector {
	return Vector{a.X / a.W, a.Y / a.W}
}
