package constraint

import (
	"fmt"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/event"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// Snap is a spring-damper tether to an anchor point or source body, tuned
// for fast snapping into place. Unlike [Distance] it is never rigid: the
// period must stay positive, and there is no rope slack.
type Snap struct {
	event.Notifier
	source       *body.RigidBody
	anchor       vecmath.Vec3
	anchored     bool
	length       float64
	period       float64
	dampingRatio float64
}

// NewSnap returns a snap spring with period 300, damping ratio 0.1, and
// rest length zero.
func NewSnap() *Snap {
	return &Snap{period: 300, dampingRatio: 0.1}
}

// SetAnchor pins the spring to a fixed point. Clears any source body.
func (c *Snap) SetAnchor(p vecmath.Vec3) {
	c.anchor = p
	c.anchored = true
	c.source = nil
	c.Changed("anchor")
}

// Anchor returns the fixed point, if one is set.
func (c *Snap) Anchor() (vecmath.Vec3, bool) {
	return c.anchor, c.anchored
}

// SetSource pairs the spring with a body. Clears any anchor.
func (c *Snap) SetSource(b *body.RigidBody) {
	c.source = b
	c.anchored = false
	c.Changed("source")
}

func (c *Snap) Source() *body.RigidBody { return c.source }

func (c *Snap) Solve(targets []*body.RigidBody, dt float64) {
	for _, t := range targets {
		if t == c.source {
			continue
		}

		var other, otherVel vecmath.Vec3
		var effMass float64
		var ok bool
		switch {
		case c.source != nil:
			other = c.source.Position()
			otherVel = c.source.Velocity()
			effMass, ok = pairEffectiveMass(t, c.source)
		case c.anchored:
			other = c.anchor
			effMass, ok = anchoredEffectiveMass(t)
		default:
			return
		}
		if !ok {
			continue
		}

		diff := t.Position().Sub(other)
		viol := diff.Norm() - c.length
		n := diff.Normalize()
		dv := t.Velocity().Sub(otherVel)

		gamma, beta := coefficients(c.period, c.dampingRatio, effMass, dt)
		antiDrift := beta / dt * viol
		lambda := -(dv.Dot(n) + antiDrift) / (gamma + dt/effMass)

		impulse := n.Scale(dt * lambda)
		t.ApplyImpulse(impulse)
		if c.source != nil {
			c.source.ApplyImpulse(impulse.Scale(-1))
		}
	}
}

func (c *Snap) GetParams() map[string]float64 {
	return map[string]float64{
		"period":       c.period,
		"dampingRatio": c.dampingRatio,
		"length":       c.length,
	}
}

func (c *Snap) SetParam(name string, value float64) error {
	switch name {
	case "period":
		// A snap spring is never rigid.
		if err := checkNonNegative(name, value); err != nil {
			return err
		}
		if value == 0 {
			return fmt.Errorf("%w: period must be positive for snap", engine.ErrParameterBounds)
		}
		c.period = value
	case "dampingRatio":
		if err := checkUnitRange(name, value); err != nil {
			return err
		}
		c.dampingRatio = value
	case "length":
		if err := checkNonNegative(name, value); err != nil {
			return err
		}
		c.length = value
	default:
		return unknownParam(name)
	}
	c.Changed(name)
	return nil
}
