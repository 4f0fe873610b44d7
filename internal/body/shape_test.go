package body

import (
	"math"
	"testing"

	"github.com/san-kum/kinetic/internal/vecmath"
)

func TestCircleInertia(t *testing.T) {
	c := Circle{Radius: 2}
	inertia := c.Inertia(3)

	// diag(¼mr², ¼mr², ½mr²) with m=3, r²=4.
	want := vecmath.Mat3Diag(3, 3, 6)
	for i := range inertia {
		if math.Abs(inertia[i]-want[i]) > 1e-12 {
			t.Fatalf("circle inertia = %v, want %v", inertia, want)
		}
	}
	if c.BoundingRadius() != 2 {
		t.Errorf("bounding radius = %v, want 2", c.BoundingRadius())
	}
}

func TestRectangleInertia(t *testing.T) {
	r := Rectangle{Width: 2, Height: 4}
	inertia := r.Inertia(6)

	// diag(mh²/12, mw²/12, m(w²+h²)/12) with m=6, w²=4, h²=16.
	want := vecmath.Mat3Diag(8, 2, 10)
	for i := range inertia {
		if math.Abs(inertia[i]-want[i]) > 1e-12 {
			t.Fatalf("rectangle inertia = %v, want %v", inertia, want)
		}
	}

	// Half diagonal of a 2x4 plate.
	if got, wantR := r.BoundingRadius(), math.Sqrt(20)/2; math.Abs(got-wantR) > 1e-12 {
		t.Errorf("bounding radius = %v, want %v", got, wantR)
	}
}

func TestShapeSwapRecomputesInertia(t *testing.T) {
	b := NewCircleBody(1)
	before := b.InertiaTensor().At(2, 2)

	b.SetShape(Circle{Radius: 2})
	after := b.InertiaTensor().At(2, 2)

	// Izz scales with r²: doubling the radius quadruples it.
	if math.Abs(after-4*before) > 1e-12 {
		t.Errorf("Izz went %v -> %v after doubling radius, want x4", before, after)
	}

	inv := b.InverseInertia().At(2, 2)
	if math.Abs(inv*after-1) > 1e-12 {
		t.Errorf("inverse not refreshed with tensor: Izz=%v, inv=%v", after, inv)
	}
}
