package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/vecmath"
)

func movingBody(mass float64, vel vecmath.Vec3) *body.RigidBody {
	b := body.NewCircleBody(1)
	b.SetMass(mass)
	b.SetVelocity(vel)
	return b
}

func TestEnergyMean(t *testing.T) {
	m := NewEnergy()

	// One body, mass 2, speed 3: E = 0.5*2*9 = 9.
	bodies := []*body.RigidBody{movingBody(2, vecmath.V3(3, 0, 0))}

	m.Observe(bodies, 0)
	m.Observe(bodies, 10)

	if got := m.Value(); math.Abs(got-9) > 1e-12 {
		t.Errorf("expected mean energy 9, got %f", got)
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy()
	bodies := []*body.RigidBody{movingBody(1, vecmath.V3(1, 1, 0))}

	m.Observe(bodies, 0)
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDriftTracksWorstCase(t *testing.T) {
	m := NewEnergyDrift()
	b := movingBody(1, vecmath.V3(1, 0, 0))
	bodies := []*body.RigidBody{b}

	m.Observe(bodies, 0)
	if m.Value() != 0 {
		t.Errorf("first observation should give zero drift, got %f", m.Value())
	}

	// Energy quadruples: drift |2-0.5|/0.5 = 3.
	b.SetVelocity(vecmath.V3(2, 0, 0))
	m.Observe(bodies, 10)
	if got := m.Value(); math.Abs(got-3) > 1e-12 {
		t.Errorf("expected drift 3, got %f", got)
	}

	// Returning to the initial energy must not lower the maximum.
	b.SetVelocity(vecmath.V3(1, 0, 0))
	m.Observe(bodies, 20)
	if got := m.Value(); math.Abs(got-3) > 1e-12 {
		t.Errorf("drift maximum should be sticky, got %f", got)
	}
}
