package flatgl

import "testing"

func TestVectorArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(-3, 4)
	if got := a.Add(b); got != V(-2, 6) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != V(4, -2) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Mul(b); got != V(-3, 8) {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.MulScalar(2); got != V(2, 4) {
		t.Errorf("MulScalar = %+v", got)
	}
	if got := a.DivScalar(2); got != V(0.5, 1) {
		t.Errorf("DivScalar = %+v", got)
	}
	if got := a.Negate(); got != V(-1, -2) {
		t.Errorf("Negate = %+v", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot = %v", got)
	}
}

func TestVectorLength(t *testing.T) {
	if got := V(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	if got := V(1, 1).Distance(V(4, 5)); got != 5 {
		t.Errorf("Distance = %v", got)
	}
	n := V(3, 4).Normalize()
	if !almostEqual(n.Length(), 1) {
		t.Errorf("Normalize().Length() = %v", n.Length())
	}
}

func TestVectorLerpMinMax(t *testing.T) {
	if got := V(0, 10).Lerp(V(10, 0), 0.5); got != V(5, 5) {
		t.Errorf("Lerp = %+v", got)
	}
	if got := V(1, 5).Min(V(3, 2)); got != V(1, 2) {
		t.Errorf("Min = %+v", got)
	}
	if got := V(1, 5).Max(V(3, 2)); got != V(3, 5) {
		t.Errorf("Max = %+v", got)
	}
}

func TestVectorWPerspectiveDivide(t *testing.T) {
	v := VectorW{4, 6, 0, 2}
	if got := v.PerspectiveDivide(); got != V(2, 3) {
		t.Errorf("PerspectiveDivide = %+v", got)
	}
	if got := v.Vector(); got != V(4, 6) {
		t.Errorf("Vector = %+v", got)
	}
}

func TestVectorWArithmetic(t *testing.T) {
	a := VectorW{1, 2, 3, 4}
	b := VectorW{4, 3, 2, 1}
	if got := a.Add(b); got != (VectorW{5, 5, 5, 5}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (VectorW{-3, -1, 1, 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.MulScalar(2); got != (VectorW{2, 4, 6, 8}) {
		t.Errorf("MulScalar = %+v", got)
	}
	if got := a.Dot(b); got != 20 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Lerp(b, 0.5); got != (VectorW{2.5, 2.5, 2.5, 2.5}) {
		t.Errorf("Lerp = %+v", got)
	}
}
