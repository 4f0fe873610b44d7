package force

import "github.com/san-kum/kinetic/internal/body"

// RotationalDrag opposes spin with torque -strength*fn(angular velocity).
// It shares the drag law and parameter surface of [Drag].
type RotationalDrag struct {
	Drag
}

// NewRotationalDrag returns a linear rotational drag generator.
func NewRotationalDrag(strength float64) *RotationalDrag {
	return &RotationalDrag{Drag: Drag{strength: strength, fn: Linear}}
}

func (d *RotationalDrag) Apply(targets []*body.RigidBody) {
	for _, t := range targets {
		t.ApplyTorque(functions[d.fn](t.AngularVelocity()).Scale(-d.strength))
	}
}
