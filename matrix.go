package flatgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a row-major 4x4 transformation matrix. Positions in this
// pipeline are 2D, but transforms and projections stay 4x4 so that the
// matrices callers supply keep their standard homogeneous meaning.
type Matrix struct {
	X00, X01, X02, X03 float64
	X10, X11, X12, X13 float64
	X20, X21, X22, X23 float64
	X30, X31, X32, X33 float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1}
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Matrix {
	return Matrix{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1}
}

// Scale returns a scaling matrix.
func Scale(x, y, z float64) Matrix {
	return Matrix{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1}
}

// RotateZ returns a rotation about the z axis, counter-clockwise in the
// x/y plane, angle in radians.
func RotateZ(angle float64) Matrix {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Matrix{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1}
}

// Orthographic returns a GL-style orthographic projection matrix.
func Orthographic(l, r, b, t, n, f float64) Matrix {
	return Matrix{
		2 / (r - l), 0, 0, -(r + l) / (r - l),
		0, 2 / (t - b), 0, -(t + b) / (t - b),
		0, 0, -2 / (f - n), -(f + n) / (f - n),
		0, 0, 0, 1}
}

// LetterboxProjection maps top-left-origin screen coordinates of a
// gameWidth x gameHeight playfield into clip space, preserving the
// playfield's aspect ratio inside a frameWidth x frameHeight frame.
// Y points down on the screen side and up in clip space.
func LetterboxProjection(gameWidth, gameHeight, frameWidth, frameHeight float64) Matrix {
	scale := math.Min(frameWidth/gameWidth, frameHeight/gameHeight)
	shiftX := 1 - gameWidth*scale/frameWidth
	shiftY := gameHeight*scale/frameHeight - 1
	return Matrix{
		2 * scale / frameWidth, 0, 0, -1 + shiftX,
		0, -2 * scale / frameHeight, 0, 1 + shiftY,
		0, 0, 1, 0,
		0, 0, 0, 1}
}

// Mul returns a * b: the matrix that applies b first, then a.
func (a Matrix) Mul(b Matrix) Matrix {
	m := Matrix{}
	m.X00 = a.X00*b.X00 + a.X01*b.X10 + a.X02*b.X20 + a.X03*b.X30
	m.X01 = a.X00*b.X01 + a.X01*b.X11 + a.X02*b.X21 + a.X03*b.X31
	m.X02 = a.X00*b.X02 + a.X01*b.X12 + a.X02*b.X22 + a.X03*b.X32
	m.X03 = a.X00*b.X03 + a.X01*b.X13 + a.X02*b.X23 + a.X03*b.X33
	m.X10 = a.X10*b.X00 + a.X11*b.X10 + a.X12*b.X20 + a.X13*b.X30
	m.X11 = a.X10*b.X01 + a.X11*b.X11 + a.X12*b.X21 + a.X13*b.X31
	m.X12 = a.X10*b.X02 + a.X11*b.X12 + a.X12*b.X22 + a.X13*b.X32
	m.X13 = a.X10*b.X03 + a.X11*b.X13 + a.X12*b.X23 + a.X13*b.X33
	m.X20 = a.X20*b.X00 + a.X21*b.X10 + a.X22*b.X20 + a.X23*b.X30
	m.X21 = a.X20*b.X01 + a.X21*b.X11 + a.X22*b.X21 + a.X23*b.X31
	m.X22 = a.X20*b.X02 + a.X21*b.X12 + a.X22*b.X22 + a.X23*b.X32
	m.X23 = a.X20*b.X03 + a.X21*b.X13 + a.X22*b.X23 + a.X23*b.X33
	m.X30 = a.X30*b.X00 + a.X31*b.X10 + a.X32*b.X20 + a.X33*b.X30
	m.X31 = a.X30*b.X01 + a.X31*b.X11 + a.X32*b.X21 + a.X33*b.X31
	m.X32 = a.X30*b.X02 + a.X31*b.X12 + a.X32*b.X22 + a.X33*b.X32
	m.X33 = a.X30*b.X03 + a.X31*b.X13 + a.X32*b.X23 + a.X33*b.X33
	return m
}

// MulPositionW promotes a 2D position to the homogeneous vector
// (x, y, 0, 1) and multiplies. The fixed z = 0, w = 1 promotion is the
// pipeline's contract with every matrix a caller supplies: shapes lie on
// the z = 0 plane of their local space.
func (a Matrix) MulPositionW(b Vector) VectorW {
	x := a.X00*b.X + a.X01*b.Y + a.X03
	y := a.X10*b.X + a.X11*b.Y + a.X13
	z := a.X20*b.X + a.X21*b.Y + a.X23
	w := a.X30*b.X + a.X31*b.Y + a.X33
	return VectorW{x, y, z, w}
}

// MulVectorW multiplies a homogeneous vector, each output component the
// dot product of a matrix row with the input.
func (a Matrix) MulVectorW(b VectorW) VectorW {
	x := a.X00*b.X + a.X01*b.Y + a.X02*b.Z + a.X03*b.W
	y := a.X10*b.X + a.X11*b.Y + a.X12*b.Z + a.X13*b.W
	z := a.X20*b.X + a.X21*b.Y + a.X22*b.Z + a.X23*b.W
	w := a.X30*b.X + a.X31*b.Y + a.X32*b.Z + a.X33*b.W
	return VectorW{x, y, z, w}
}

// MulPosition applies the matrix to a 2D position and drops z and w.
// Only meaningful for affine matrices with a (0, 0, 0, 1) bottom row.
func (a Matrix) MulPosition(b Vector) Vector {
	x := a.X00*b.X + a.X01*b.Y + a.X03
	y := a.X10*b.X + a.X11*b.Y + a.X13
	return Vector{x, y}
}

func (a Matrix) Transpose() Matrix {
	return Matrix{
		a.X00, a.X10, a.X20, a.X30,
		a.X01, a.X11, a.X21, a.X31,
		a.X02, a.X12, a.X22, a.X32,
		a.X03, a.X13, a.X23, a.X33}
}

func (a Matrix) Determinant() float64 {
	a0 := a.X00*a.X11 - a.X01*a.X10
	a1 := a.X00*a.X12 - a.X02*a.X10
	a2 := a.X00*a.X13 - a.X03*a.X10
	a3 := a.X01*a.X12 - a.X02*a.X11
	a4 := a.X01*a.X13 - a.X03*a.X11
	a5 := a.X02*a.X13 - a.X03*a.X12
	b0 := a.X20*a.X31 - a.X21*a.X30
	b1 := a.X20*a.X32 - a.X22*a.X30
	b2 := a.X20*a.X33 - a.X23*a.X30
	b3 := a.X21*a.X32 - a.X22*a.X31
	b4 := a.X21*a.X33 - a.X23*a.X31
	b5 := a.X22*a.X33 - a.X23*a.X32
	return a0*b5 - a1*b4 + a2*b3 + a3*b2 - a4*b1 + a5*b0
}

// Inverse returns the inverse matrix. A singular matrix yields Inf/NaN
// entries; no validation happens here.
func (a Matrix) Inverse() Matrix {
	a0 := a.X00*a.X11 - a.X01*a.X10
	a1 := a.X00*a.X12 - a.X02*a.X10
	a2 := a.X00*a.X13 - a.X03*a.X10
	a3 := a.X01*a.X12 - a.X02*a.X11
	a4 := a.X01*a.X13 - a.X03*a.X11
	a5 := a.X02*a.X13 - a.X03*a.X12
	b0 := a.X20*a.X31 - a.X21*a.X30
	b1 := a.X20*a.X32 - a.X22*a.X30
	b2 := a.X20*a.X33 - a.X23*a.X30
	b3 := a.X21*a.X32 - a.X22*a.X31
	b4 := a.X21*a.X33 - a.X23*a.X31
	b5 := a.X22*a.X33 - a.X23*a.X32
	r := 1 / (a0*b5 - a1*b4 + a2*b3 + a3*b2 - a4*b1 + a5*b0)
	m := Matrix{}
	m.X00 = (a.X11*b5 - a.X12*b4 + a.X13*b3) * r
	m.X01 = (-a.X01*b5 + a.X02*b4 - a.X03*b3) * r
	m.X02 = (a.X31*a5 - a.X32*a4 + a.X33*a3) * r
	m.X03 = (-a.X21*a5 + a.X22*a4 - a.X23*a3) * r
	m.X10 = (-a.X10*b5 + a.X12*b2 - a.X13*b1) * r
	m.X11 = (a.X00*b5 - a.X02*b2 + a.X03*b1) * r
	m.X12 = (-a.X30*a5 + a.X32*a2 - a.X33*a1) * r
	m.X13 = (a.X20*a5 - a.X22*a2 + a.X23*a1) * r
	m.X20 = (a.X10*b4 - a.X11*b2 + a.X13*b0) * r
	m.X21 = (-a.X00*b4 + a.X01*b2 - a.X03*b0) * r
	m.X22 = (a.X30*a4 - a.X31*a2 + a.X33*a0) * r
	m.X23 = (-a.X20*a4 + a.X21*a2 - a.X23*a0) * r
	m.X30 = (-a.X10*b3 + a.X11*b1 - a.X12*b0) * r
	m.X31 = (a.X00*b3 - a.X01*b1 + a.X02*b0) * r
	m.X32 = (-a.X30*a3 + a.X31*a1 - a.X32*a0) * r
	m.X33 = (a.X20*a3 - a.X21*a1 + a.X22*a0) * r
	return m
}

// MatrixFromMGL converts a column-major mgl64.Mat4.
func MatrixFromMGL(m mgl64.Mat4) Matrix {
	return Matrix{
		m.At(0, 0), m.At(0, 1), m.At(0, 2), m.At(0, 3),
		m.At(1, 0), m.At(1, 1), m.At(1, 2), m.At(1, 3),
		m.At(2, 0), m.At(2, 1), m.At(2, 2), m.At(2, 3),
		m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3)}
}

// MGL converts to a column-major mgl64.Mat4.
func (a Matrix) MGL() mgl64.Mat4 {
	return mgl64.Mat4{
		a.X00, a.X10, a.X20, a.X30,
		a.X01, a.X11, a.X21, a.X31,
		a.X02, a.X12, a.X22, a.X32,
		a.X03, a.X13, a.X23, a.X33}
}
