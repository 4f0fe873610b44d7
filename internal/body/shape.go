package body

import "github.com/san-kum/kinetic/internal/vecmath"

// Shape computes the moment of inertia tensor for a rigid body of the given
// mass, expressed about the body's local axes. Shapes are immutable values;
// resizing a body means attaching a new shape via [RigidBody.SetShape],
// which recomputes the tensor and its inverse in one step.
type Shape interface {
	// Inertia returns the local-axis inertia tensor for the given mass.
	Inertia(mass float64) vecmath.Mat3

	// BoundingRadius returns the radius of the smallest sphere centered on
	// the body origin that encloses the shape. Contact tests use it as the
	// collision radius.
	BoundingRadius() float64
}

// Circle is a disc of uniform density lying in the local XY plane.
type Circle struct {
	Radius float64
}

func (c Circle) Inertia(mass float64) vecmath.Mat3 {
	rr := c.Radius * c.Radius
	return vecmath.Mat3Diag(
		0.25*mass*rr,
		0.25*mass*rr,
		0.5*mass*rr,
	)
}

func (c Circle) BoundingRadius() float64 { return c.Radius }

// Rectangle is a uniform-density plate in the local XY plane with the given
// extents.
type Rectangle struct {
	Width  float64
	Height float64
}

func (r Rectangle) Inertia(mass float64) vecmath.Mat3 {
	ww := r.Width * r.Width
	hh := r.Height * r.Height
	return vecmath.Mat3Diag(
		mass*hh/12,
		mass*ww/12,
		mass*(ww+hh)/12,
	)
}

// BoundingRadius is the half diagonal.
func (r Rectangle) BoundingRadius() float64 {
	return 0.5 * vecmath.V3(r.Width, r.Height, 0).Norm()
}
