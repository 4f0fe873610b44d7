package vecmath

import (
	"math"
	"testing"
)

func TestMat3Identity(t *testing.T) {
	m := Mat3Identity()
	v := V3(1, 2, 3)

	if got := m.MulVec(v); got != v {
		t.Errorf("identity should preserve vector, got %v", got)
	}
}

func TestMat3Mul(t *testing.T) {
	a := Mat3Diag(2, 3, 4)
	b := Mat3Diag(5, 6, 7)

	prod := a.Mul(b)
	want := Mat3Diag(10, 18, 28)
	if prod != want {
		t.Errorf("diagonal product wrong: %v", prod)
	}

	// Rotation composition: Rz(a)·Rz(b) = Rz(a+b).
	ra := rotZMat(0.3)
	rb := rotZMat(0.5)
	composed := ra.Mul(rb)
	direct := rotZMat(0.8)
	for i := range composed {
		if math.Abs(composed[i]-direct[i]) > 1e-12 {
			t.Fatalf("rotation composition mismatch at %d: %f vs %f", i, composed[i], direct[i])
		}
	}
}

func rotZMat(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{c, -s, 0, s, c, 0, 0, 0, 1}
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	tr := m.Transpose()
	want := Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}

	if tr != want {
		t.Errorf("transpose wrong: %v", tr)
	}
	if tr.Transpose() != m {
		t.Error("double transpose should round-trip")
	}
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3Diag(2, 4, 8)
	inv := m.Inverse()

	prod := m.Mul(inv)
	id := Mat3Identity()
	for i := range prod {
		if math.Abs(prod[i]-id[i]) > 1e-12 {
			t.Fatalf("m·m⁻¹ not identity at %d: %f", i, prod[i])
		}
	}

	// Singular falls back to identity.
	singular := Mat3Diag(1, 0, 1)
	if singular.Inverse() != Mat3Identity() {
		t.Error("singular inverse should fall back to identity")
	}
}

func TestMat3At(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if m.At(1, 2) != 6 {
		t.Errorf("expected At(1,2)=6, got %f", m.At(1, 2))
	}
	if m.At(2, 0) != 7 {
		t.Errorf("expected At(2,0)=7, got %f", m.At(2, 0))
	}
}
