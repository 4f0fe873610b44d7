package constraint

import (
	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/event"
)

// Collision resolves overlap between circular bodies: each target is tested
// against the source body, and penetrating pairs receive an equal and
// opposite contact impulse. Contact is hard (no spring softness); position
// error feeds back through Baumgarte drift with a slop tolerance, and
// restitution scales the relative-velocity term.
//
// Each resolved contact emits preCollision, collision, and postCollision
// through the embedded [event.Bus].
type Collision struct {
	event.Bus
	event.Notifier
	source      *body.RigidBody
	restitution float64
	drift       float64
	slop        float64
}

// NewCollision returns a collision constraint against source with
// restitution 0.5, drift 0.5, and no slop.
func NewCollision(source *body.RigidBody) *Collision {
	return &Collision{source: source, restitution: 0.5, drift: 0.5}
}

func (c *Collision) Source() *body.RigidBody { return c.source }

func (c *Collision) SetSource(b *body.RigidBody) {
	c.source = b
	c.Changed("source")
}

func (c *Collision) Solve(targets []*body.RigidBody, dt float64) {
	if c.source == nil {
		return
	}
	srcRadius := c.source.Radius()

	for _, t := range targets {
		if t == c.source {
			continue
		}
		effMass, ok := pairEffectiveMass(t, c.source)
		if !ok {
			continue
		}

		diff := t.Position().Sub(c.source.Position())
		viol := diff.Norm() - (t.Radius() + srcRadius)
		if viol >= 0 {
			continue
		}
		n := diff.Normalize()

		contact := event.Contact{
			Target:  t,
			Source:  c.source,
			Overlap: -viol,
			Normal:  n,
		}
		c.Emit(event.PreCollision, contact)

		vn := t.Velocity().Sub(c.source.Velocity()).Dot(n)
		corr := viol + c.slop
		if corr > 0 {
			corr = 0
		}
		// Hard contact: gamma is zero, drift replaces beta.
		lambda := -((1+c.restitution)*vn + c.drift/dt*corr) / (dt / effMass)

		impulse := n.Scale(dt * lambda)
		t.ApplyImpulse(impulse)
		c.source.ApplyImpulse(impulse.Scale(-1))

		c.Emit(event.Collision, contact)
		c.Emit(event.PostCollision, contact)
	}
}

func (c *Collision) GetParams() map[string]float64 {
	return map[string]float64{
		"restitution": c.restitution,
		"drift":       c.drift,
		"slop":        c.slop,
	}
}

func (c *Collision) SetParam(name string, value float64) error {
	switch name {
	case "restitution":
		if err := checkUnitRange(name, value); err != nil {
			return err
		}
		c.restitution = value
	case "drift":
		if err := checkUnitRange(name, value); err != nil {
			return err
		}
		c.drift = value
	case "slop":
		if err := checkNonNegative(name, value); err != nil {
			return err
		}
		c.slop = value
	default:
		return unknownParam(name)
	}
	c.Changed(name)
	return nil
}
