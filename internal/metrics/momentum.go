package metrics

import (
	"math"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// Momentum tracks the worst absolute deviation of total linear momentum
// from its first observation. Pairwise collisions between movable bodies
// should keep this at zero; walls and anchored constraints inject momentum
// and will not.
type Momentum struct {
	name    string
	initial vecmath.Vec3
	maxDev  float64
	samples int
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(bodies []*body.RigidBody, t float64) {
	total := vecmath.Vec3{}
	for _, b := range bodies {
		// Immovable bodies have infinite mass; they hold no momentum.
		if b.IsImmovable() {
			continue
		}
		total = total.Add(b.Velocity().Scale(b.Mass()))
	}

	if m.samples == 0 {
		m.initial = total
	}
	m.samples++

	m.maxDev = math.Max(m.maxDev, total.Sub(m.initial).Norm())
}

func (m *Momentum) Value() float64 {
	return m.maxDev
}

func (m *Momentum) Reset() {
	m.initial = vecmath.Vec3{}
	m.maxDev = 0
	m.samples = 0
}
