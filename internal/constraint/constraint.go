package constraint

import (
	"fmt"
	"math"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// gradientStep is the forward finite-difference step used by Curve and
// Surface. Gradients of ill-conditioned implicit functions are unstable
// near this epsilon; that is a documented precision limit.
const gradientStep = 1e-7

// SurfaceFunc is an implicit surface f(x,y,z). The surface is its zero set.
type SurfaceFunc func(x, y, z float64) float64

// coefficients converts an oscillation period and damping ratio into the
// constraint softness terms. Period zero selects the rigid, fully
// stabilized solve.
func coefficients(period, dampingRatio, effMass, dt float64) (gamma, beta float64) {
	if period == 0 {
		return 0, 1
	}
	k := 4 * math.Pi * math.Pi * effMass / (period * period)
	c := 4 * math.Pi * effMass * dampingRatio / period
	return 1 / (c + dt*k), dt * k / (c + dt*k)
}

// pairEffectiveMass returns 1/(w1+w2). ok is false when both bodies are
// immovable, in which case the pair must be skipped: the effective mass is
// undefined and no impulse can change either body.
func pairEffectiveMass(a, b *body.RigidBody) (effMass float64, ok bool) {
	w := a.InverseMass() + b.InverseMass()
	if w == 0 {
		return 0, false
	}
	return 1 / w, true
}

// anchoredEffectiveMass returns the body's own mass for constraints against
// a fixed point or surface. ok is false for immovable bodies.
func anchoredEffectiveMass(t *body.RigidBody) (effMass float64, ok bool) {
	if t.InverseMass() == 0 {
		return 0, false
	}
	return t.Mass(), true
}

// gradient evaluates the forward finite-difference gradient of fn at p.
func gradient(fn SurfaceFunc, p vecmath.Vec3) vecmath.Vec3 {
	f0 := fn(p.X, p.Y, p.Z)
	return vecmath.V3(
		(fn(p.X+gradientStep, p.Y, p.Z)-f0)/gradientStep,
		(fn(p.X, p.Y+gradientStep, p.Z)-f0)/gradientStep,
		(fn(p.X, p.Y, p.Z+gradientStep)-f0)/gradientStep,
	)
}

func checkUnitRange(name string, v float64) error {
	if v < 0 || v > 1 || math.IsNaN(v) {
		return fmt.Errorf("%w: %s %v not in [0,1]", engine.ErrParameterBounds, name, v)
	}
	return nil
}

func checkNonNegative(name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s %v must be >= 0 and finite", engine.ErrParameterBounds, name, v)
	}
	return nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite", engine.ErrParameterBounds, name)
	}
	return nil
}

func unknownParam(name string) error {
	return fmt.Errorf("%w: %q", engine.ErrUnknownParameter, name)
}
