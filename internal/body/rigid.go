package body

import "github.com/san-kum/kinetic/internal/vecmath"

// RigidBody extends [Particle] with rotational state: orientation, angular
// velocity, angular momentum, a torque accumulator, and the inertia tensor
// derived from the attached [Shape].
//
// Angular velocity and angular momentum are kept consistent through the
// inertia tensor: setting one derives the other. The integrator advances
// momentum and derives angular velocity from it each step.
type RigidBody struct {
	Particle

	orientation vecmath.Quat
	angVel      vecmath.Vec3
	momentum    vecmath.Vec3
	torque      vecmath.Vec3
	inertia     vecmath.Mat3
	invInertia  vecmath.Mat3
	shape       Shape
}

// NewRigidBody returns a unit-mass body at the origin with identity
// orientation and identity inertia. Attach a [Shape] to derive the tensor
// from geometry.
func NewRigidBody() *RigidBody {
	b := &RigidBody{
		orientation: vecmath.QuatIdentity(),
		inertia:     vecmath.Mat3Identity(),
		invInertia:  vecmath.Mat3Identity(),
	}
	b.Particle = *NewParticle()
	return b
}

// NewCircleBody returns a rigid body carrying a [Circle] shape.
func NewCircleBody(radius float64) *RigidBody {
	b := NewRigidBody()
	b.SetShape(Circle{Radius: radius})
	return b
}

// NewRectangleBody returns a rigid body carrying a [Rectangle] shape.
func NewRectangleBody(width, height float64) *RigidBody {
	b := NewRigidBody()
	b.SetShape(Rectangle{Width: width, Height: height})
	return b
}

func (b *RigidBody) Shape() Shape { return b.shape }

// SetShape attaches s and recomputes the inertia tensor and its inverse
// together, so no observer can see one updated without the other.
func (b *RigidBody) SetShape(s Shape) {
	b.shape = s
	b.recomputeInertia()
}

// SetMass sets the mass and re-derives inverse mass, inertia, and inverse
// inertia in one step.
func (b *RigidBody) SetMass(m float64) {
	b.Particle.SetMass(m)
	b.recomputeInertia()
}

func (b *RigidBody) recomputeInertia() {
	if b.invMass == 0 {
		// Immovable: solvers read only the inverse, which must be zero.
		b.inertia = vecmath.Mat3{}
		b.invInertia = vecmath.Mat3{}
		return
	}
	if b.shape == nil {
		b.inertia = vecmath.Mat3Identity()
		b.invInertia = vecmath.Mat3Identity()
		return
	}
	b.inertia = b.shape.Inertia(b.mass)
	b.invInertia = b.inertia.Inverse()
}

// Radius returns the collision radius: the shape's bounding radius, or zero
// for a point mass without a shape.
func (b *RigidBody) Radius() float64 {
	if b.shape == nil {
		return 0
	}
	return b.shape.BoundingRadius()
}

func (b *RigidBody) Orientation() vecmath.Quat { return b.orientation }

func (b *RigidBody) AngularVelocity() vecmath.Vec3 { return b.angVel }

func (b *RigidBody) AngularMomentum() vecmath.Vec3 { return b.momentum }

func (b *RigidBody) Torque() vecmath.Vec3 { return b.torque }

func (b *RigidBody) InertiaTensor() vecmath.Mat3 { return b.inertia }

func (b *RigidBody) InverseInertia() vecmath.Mat3 { return b.invInertia }

func (b *RigidBody) SetOrientation(q vecmath.Quat) {
	b.orientation = q
	b.Wake()
}

// SetAngularVelocity sets omega and derives the matching angular momentum
// L = I*omega.
func (b *RigidBody) SetAngularVelocity(w vecmath.Vec3) {
	b.angVel = w
	b.momentum = b.inertia.MulVec(w)
	b.Wake()
}

// SetAngularMomentum sets L and derives omega = I^-1 * L.
func (b *RigidBody) SetAngularMomentum(l vecmath.Vec3) {
	b.momentum = l
	b.angVel = b.invInertia.MulVec(l)
	b.Wake()
}

// ApplyTorque accumulates t into the torque accumulator, consumed and
// cleared by the integrator's momentum step.
func (b *RigidBody) ApplyTorque(t vecmath.Vec3) {
	b.torque = b.torque.Add(t)
	b.Wake()
}

// ClearTorque zeroes the torque accumulator.
func (b *RigidBody) ClearTorque() { b.torque.Clear() }

// Energy returns the total kinetic energy: translational plus rotational
// ½(I·omega)·omega.
func (b *RigidBody) Energy() float64 {
	return b.Particle.Energy() + 0.5*b.inertia.MulVec(b.angVel).Dot(b.angVel)
}

// ToWorld maps a body-local vector into world coordinates by the current
// orientation.
func (b *RigidBody) ToWorld(local vecmath.Vec3) vecmath.Vec3 {
	return b.orientation.Rotate(local)
}

// Reset reinitializes the full state: kinematics from the arguments,
// orientation to identity, angular momentum and both accumulators to zero.
func (b *RigidBody) Reset(pos, vel vecmath.Vec3) {
	b.Particle.Reset(pos, vel)
	b.orientation = vecmath.QuatIdentity()
	b.angVel.Clear()
	b.momentum.Clear()
	b.torque.Clear()
}

// NormalizeOrientation rescales the orientation to unit length. The
// integrator never renormalizes on its own; a world may call this
// periodically to bound quaternion drift.
func (b *RigidBody) NormalizeOrientation() {
	b.orientation = b.orientation.Normalize()
}
