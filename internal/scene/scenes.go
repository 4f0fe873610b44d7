package scene

import (
	"math/rand"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/constraint"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/force"
	"github.com/san-kum/kinetic/internal/vecmath"
	"github.com/san-kum/kinetic/internal/world"
)

// gravity is the downward acceleration used by the demo scenes, in
// units per millisecond squared.
const gravity = 0.0005

// Bounce drops two balls into a box walled on the bottom and both sides.
// The lower ball rebounds off the floor into the one still falling, and a
// light drag lets the pair settle.
func Bounce(cfg engine.Config) *world.World {
	w := world.New(cfg)

	lower := body.NewCircleBody(1)
	lower.SetPosition(vecmath.V3(0, 4, 0))
	w.AddBody(lower)

	upper := body.NewCircleBody(1)
	upper.SetPosition(vecmath.V3(0, 8, 0))
	w.AddBody(upper)

	w.AddForce(force.NewForce(vecmath.V3(0, -gravity, 0)))
	w.AddForce(force.NewDrag(0.0005))

	w.AddConstraint(constraint.NewCollision(lower), upper)
	w.AddConstraint(constraint.NewWalls(20, 20, 20,
		constraint.SideBottom, constraint.SideLeft, constraint.SideRight))

	return w
}

// Rope hangs a three-link chain from a fixed anchor, starting horizontal
// so it swings.
func Rope(cfg engine.Config) *world.World {
	w := world.New(cfg)

	anchor := vecmath.V3(0, 10, 0)
	var prev *body.RigidBody
	for i := 0; i < 3; i++ {
		b := body.NewCircleBody(0.5)
		b.SetPosition(vecmath.V3(float64(3*(i+1)), 10, 0))
		w.AddBody(b)

		link := constraint.NewDistance(3)
		if prev == nil {
			link.SetAnchor(anchor)
		} else {
			link.SetSource(prev)
		}
		w.AddConstraint(link, b)
		prev = b
	}

	w.AddForce(force.NewForce(vecmath.V3(0, -gravity, 0)))
	return w
}

// SnapGrid places beads on a 3x3 lattice, tethers each to its own grid
// point with a snap spring, and kicks them with seeded random velocities.
// Drag lets the grid settle back.
func SnapGrid(cfg engine.Config) *world.World {
	w := world.New(cfg)
	rng := rand.New(rand.NewSource(cfg.Seed))

	const spacing = 4.0
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			point := vecmath.V3(float64(i)*spacing, float64(j)*spacing, 0)

			b := body.NewCircleBody(0.5)
			b.SetPosition(point)
			b.SetVelocity(vecmath.V3(
				(rng.Float64()-0.5)*0.02,
				(rng.Float64()-0.5)*0.02,
				0,
			))
			w.AddBody(b)

			snap := constraint.NewSnap()
			snap.SetAnchor(point)
			w.AddConstraint(snap, b)
		}
	}

	w.AddForce(force.NewDrag(0.002))
	return w
}

// Bead confines a body to a circular wire of radius 8 in the z=0 plane
// and lets gravity swing it.
func Bead(cfg engine.Config) *world.World {
	w := world.New(cfg)

	b := body.NewCircleBody(0.3)
	b.SetPosition(vecmath.V3(8, 0, 0))
	b.SetVelocity(vecmath.V3(0, 0.01, 0))
	w.AddBody(b)

	ring, _ := ParseEquation("circle:8")
	w.AddConstraint(constraint.NewCurve(ring), b)
	w.AddForce(force.NewForce(vecmath.V3(0, -gravity, 0)), b)

	return w
}

// Orbit keeps a satellite on a circular path: the rigid tether supplies
// exactly the centripetal impulse the tangential velocity demands.
func Orbit(cfg engine.Config) *world.World {
	w := world.New(cfg)

	moon := body.NewCircleBody(0.5)
	moon.SetPosition(vecmath.V3(8, 0, 0))
	moon.SetVelocity(vecmath.V3(0, 0.01, 0))
	w.AddBody(moon)

	tether := constraint.NewDistance(8)
	tether.SetAnchor(vecmath.V3(0, 0, 0))
	w.AddConstraint(tether, moon)

	return w
}
