package body

import (
	"math"
	"testing"

	"github.com/san-kum/kinetic/internal/vecmath"
)

func TestNewParticleDefaults(t *testing.T) {
	p := NewParticle()

	if p.Mass() != 1 || p.InverseMass() != 1 {
		t.Errorf("default mass = %v (inverse %v), want 1 and 1", p.Mass(), p.InverseMass())
	}
	if !p.Position().IsZero() || !p.Velocity().IsZero() {
		t.Error("new particle should start at rest at the origin")
	}
	if !p.IsAwake() {
		t.Error("new particle should be awake")
	}
}

func TestParticleForceAccumulation(t *testing.T) {
	p := NewParticle()
	p.ApplyForce(vecmath.V3(1, 0, 0))
	p.ApplyForce(vecmath.V3(2, -1, 0))

	got := p.Force()
	want := vecmath.V3(3, -1, 0)
	if got != want {
		t.Errorf("accumulated force = %v, want %v", got, want)
	}

	p.ClearForce()
	if !p.Force().IsZero() {
		t.Error("force accumulator should be zero after clear")
	}
}

func TestParticleApplyImpulse(t *testing.T) {
	p := NewParticle()
	p.SetMass(2)
	p.ApplyImpulse(vecmath.V3(4, 0, 0))

	got := p.Velocity()
	want := vecmath.V3(2, 0, 0)
	if got != want {
		t.Errorf("velocity after impulse = %v, want %v", got, want)
	}
}

func TestParticleInfiniteMass(t *testing.T) {
	p := NewParticle()
	p.SetMass(math.Inf(1))

	if p.InverseMass() != 0 {
		t.Errorf("inverse mass = %v, want 0 for infinite mass", p.InverseMass())
	}
	if !p.IsImmovable() {
		t.Error("infinite-mass particle should report immovable")
	}

	p.ApplyImpulse(vecmath.V3(100, 0, 0))
	if !p.Velocity().IsZero() {
		t.Errorf("impulse moved an immovable particle: v = %v", p.Velocity())
	}
	if p.Energy() != 0 {
		t.Errorf("immovable particle energy = %v, want 0", p.Energy())
	}
}

func TestParticleEnergy(t *testing.T) {
	p := NewParticle()
	p.SetMass(2)
	p.SetVelocity(vecmath.V3(3, 4, 0))

	got := p.Energy()
	want := 0.5 * 2 * 25.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("energy = %v, want %v", got, want)
	}
}

func TestParticleSettersWake(t *testing.T) {
	cases := []struct {
		name string
		op   func(*Particle)
	}{
		{"SetPosition", func(p *Particle) { p.SetPosition(vecmath.V3(1, 0, 0)) }},
		{"SetVelocity", func(p *Particle) { p.SetVelocity(vecmath.V3(1, 0, 0)) }},
		{"ApplyForce", func(p *Particle) { p.ApplyForce(vecmath.V3(1, 0, 0)) }},
		{"ApplyImpulse", func(p *Particle) { p.ApplyImpulse(vecmath.V3(1, 0, 0)) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParticle()
			p.Sleep()
			tc.op(p)
			if !p.IsAwake() {
				t.Errorf("%s did not wake the particle", tc.name)
			}
		})
	}
}

func TestParticleReset(t *testing.T) {
	p := NewParticle()
	p.ApplyForce(vecmath.V3(5, 5, 5))
	p.Reset(vecmath.V3(1, 2, 3), vecmath.V3(-1, 0, 0))

	if p.Position() != vecmath.V3(1, 2, 3) {
		t.Errorf("position after reset = %v", p.Position())
	}
	if p.Velocity() != vecmath.V3(-1, 0, 0) {
		t.Errorf("velocity after reset = %v", p.Velocity())
	}
	if !p.Force().IsZero() {
		t.Error("reset should clear the force accumulator")
	}
}
