package body

import (
	"math"

	"github.com/san-kum/kinetic/internal/vecmath"
)

// Particle is the translational core of every simulated body: position,
// velocity, mass, and a force accumulator consumed by the integrator.
//
// Setters that change motion state wake the particle so an external sleep
// policy never strands a moving body asleep.
type Particle struct {
	pos     vecmath.Vec3
	vel     vecmath.Vec3
	mass    float64
	invMass float64
	force   vecmath.Vec3
	awake   bool
}

func NewParticle() *Particle {
	return &Particle{
		mass:    1,
		invMass: 1,
		awake:   true,
	}
}

func (p *Particle) Position() vecmath.Vec3 { return p.pos }

func (p *Particle) Velocity() vecmath.Vec3 { return p.vel }

func (p *Particle) Mass() float64 { return p.mass }

func (p *Particle) InverseMass() float64 { return p.invMass }

func (p *Particle) Force() vecmath.Vec3 { return p.force }

func (p *Particle) SetPosition(v vecmath.Vec3) {
	p.pos = v
	p.Wake()
}

func (p *Particle) SetVelocity(v vecmath.Vec3) {
	p.vel = v
	p.Wake()
}

// SetMass sets the particle mass and re-derives the inverse mass. An
// infinite mass marks the particle immovable (inverse mass zero).
func (p *Particle) SetMass(m float64) {
	p.mass = m
	if math.IsInf(m, 1) {
		p.invMass = 0
	} else {
		p.invMass = 1 / m
	}
}

// IsImmovable reports whether the particle has infinite mass.
func (p *Particle) IsImmovable() bool { return p.invMass == 0 }

// ApplyForce accumulates f into the force accumulator. The accumulator is
// consumed and cleared by the integrator's velocity step.
func (p *Particle) ApplyForce(f vecmath.Vec3) {
	p.force = p.force.Add(f)
	p.Wake()
}

// ApplyImpulse changes velocity immediately by imp scaled by the inverse
// mass. Impulses bypass the accumulator: they are instantaneous, unlike
// forces.
func (p *Particle) ApplyImpulse(imp vecmath.Vec3) {
	p.vel = p.vel.Add(imp.Scale(p.invMass))
	p.Wake()
}

// ClearForce zeroes the accumulator. Called by the integrator after the
// velocity step consumes the accumulated force.
func (p *Particle) ClearForce() { p.force.Clear() }

// Energy returns the translational kinetic energy ½mv². Immovable particles
// report zero.
func (p *Particle) Energy() float64 {
	if p.invMass == 0 {
		return 0
	}
	return 0.5 * p.mass * p.vel.NormSq()
}

// Reset reinitializes the kinematic state and clears the accumulator.
func (p *Particle) Reset(pos, vel vecmath.Vec3) {
	p.pos = pos
	p.vel = vel
	p.force.Clear()
	p.Wake()
}

func (p *Particle) Wake() { p.awake = true }

func (p *Particle) Sleep() { p.awake = false }

func (p *Particle) IsAwake() bool { return p.awake }
