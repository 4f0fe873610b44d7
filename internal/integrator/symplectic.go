// Package integrator advances body state through time with semi-implicit
// (symplectic) Euler stepping: velocity updates from the accumulated force
// first, then position advances along the already-updated velocity. The
// same ordering applies to the rotational state.
package integrator

import "github.com/san-kum/kinetic/internal/body"

// SymplecticEuler steps one body per call, in a fixed order: consume the
// force accumulator into velocity, advance position, consume the torque
// accumulator into angular momentum, derive angular velocity, advance
// orientation. Zero accumulators skip their substep, including the clear.
//
// The orientation update q += dt/2·(q·omega) does not renormalize the
// quaternion; drift stays bounded only if the caller renormalizes
// periodically (see the world's RenormalizeEvery option).
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (SymplecticEuler) Step(b *body.RigidBody, dt float64) {
	if f := b.Force(); !f.IsZero() {
		b.SetVelocity(b.Velocity().Add(f.Scale(dt * b.InverseMass())))
		b.ClearForce()
	}
	b.SetPosition(b.Position().Add(b.Velocity().Scale(dt)))

	if tq := b.Torque(); !tq.IsZero() {
		// SetAngularMomentum derives omega = I^-1 * L.
		b.SetAngularMomentum(b.AngularMomentum().Add(tq.Scale(dt)))
		b.ClearTorque()
	}
	if w := b.AngularVelocity(); !w.IsZero() {
		q := b.Orientation()
		b.SetOrientation(q.Add(q.MulPure(w).Scale(dt / 2)))
	}
}
