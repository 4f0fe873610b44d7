package constraint

import (
	"math"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/event"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// Distance keeps each target at a fixed distance from an anchor point or a
// source body. With period zero the constraint is rigid; with a positive
// period it behaves as a damped spring. A positive minLength turns it into
// a rope: violations smaller than minLength are ignored, so targets move
// freely inside the slack range.
type Distance struct {
	event.Notifier
	source       *body.RigidBody
	anchor       vecmath.Vec3
	anchored     bool
	length       float64
	minLength    float64
	period       float64
	dampingRatio float64
}

// NewDistance returns a rigid distance constraint of the given rest length,
// unconfigured until an anchor or source is set.
func NewDistance(length float64) *Distance {
	return &Distance{length: length}
}

// SetAnchor pins the constraint to a fixed point. Clears any source body.
func (c *Distance) SetAnchor(p vecmath.Vec3) {
	c.anchor = p
	c.anchored = true
	c.source = nil
	c.Changed("anchor")
}

// Anchor returns the fixed point, if one is set.
func (c *Distance) Anchor() (vecmath.Vec3, bool) {
	return c.anchor, c.anchored
}

// SetSource pairs the constraint with a body. Clears any anchor.
func (c *Distance) SetSource(b *body.RigidBody) {
	c.source = b
	c.anchored = false
	c.Changed("source")
}

func (c *Distance) Source() *body.RigidBody { return c.source }

func (c *Distance) Solve(targets []*body.RigidBody, dt float64) {
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
		if c.minLength > 0 && math.Abs(viol) < c.minLength {
			continue
		}

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

func (c *Distance) GetParams() map[string]float64 {
	return map[string]float64{
		"period":       c.period,
		"dampingRatio": c.dampingRatio,
		"length":       c.length,
		"minLength":    c.minLength,
	}
}

func (c *Distance) SetParam(name string, value float64) error {
	switch name {
	case "period":
		if err := checkNonNegative(name, value); err != nil {
			return err
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
	case "minLength":
		if err := checkNonNegative(name, value); err != nil {
			return err
		}
		c.minLength = value
	default:
		return unknownParam(name)
	}
	c.Changed(name)
	return nil
}
