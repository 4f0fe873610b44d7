package constraint

import (
	"math"
	"testing"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/vecmath"
)

func TestCoefficientsRigid(t *testing.T) {
	gamma, beta := coefficients(0, 0.5, 2, 16.67)
	if gamma != 0 || beta != 1 {
		t.Errorf("period=0: gamma=%v beta=%v, want exactly 0 and 1", gamma, beta)
	}
}

func TestCoefficientsSoft(t *testing.T) {
	period, ratio, m, dt := 300.0, 0.5, 2.0, 1000.0/60.0

	k := 4 * math.Pi * math.Pi * m / (period * period)
	c := 4 * math.Pi * m * ratio / period
	wantGamma := 1 / (c + dt*k)
	wantBeta := dt * k / (c + dt*k)

	gamma, beta := coefficients(period, ratio, m, dt)
	if math.Abs(gamma-wantGamma) > 1e-12 || math.Abs(beta-wantBeta) > 1e-12 {
		t.Errorf("gamma=%v beta=%v, want %v and %v", gamma, beta, wantGamma, wantBeta)
	}
	if beta <= 0 || beta >= 1 || gamma <= 0 {
		t.Errorf("soft coefficients out of range: gamma=%v beta=%v", gamma, beta)
	}
}

func TestGradientOfSphere(t *testing.T) {
	sphere := func(x, y, z float64) float64 { return x*x + y*y + z*z - 1 }

	got := gradient(sphere, vecmath.V3(1, 0, 0))
	want := vecmath.V3(2, 0, 0)
	// Forward differences carry O(step) error.
	if got.Sub(want).Norm() > 1e-5 {
		t.Errorf("gradient = %v, want ~%v", got, want)
	}
}

func TestPairEffectiveMass(t *testing.T) {
	a := body.NewRigidBody()
	a.SetMass(2)
	b := body.NewRigidBody()
	b.SetMass(2)

	m, ok := pairEffectiveMass(a, b)
	if !ok || math.Abs(m-1) > 1e-12 {
		t.Errorf("equal masses 2: effMass=%v ok=%v, want 1 true", m, ok)
	}

	a.SetMass(math.Inf(1))
	b.SetMass(math.Inf(1))
	if _, ok := pairEffectiveMass(a, b); ok {
		t.Error("two immovable bodies must report no effective mass")
	}
}

func TestAnchoredEffectiveMass(t *testing.T) {
	b := body.NewRigidBody()
	b.SetMass(3)
	if m, ok := anchoredEffectiveMass(b); !ok || m != 3 {
		t.Errorf("effMass=%v ok=%v, want 3 true", m, ok)
	}

	b.SetMass(math.Inf(1))
	if _, ok := anchoredEffectiveMass(b); ok {
		t.Error("immovable body must report no effective mass")
	}
}
