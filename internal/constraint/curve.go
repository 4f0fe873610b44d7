package constraint

import (
	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/event"
)

// Curve confines targets to the intersection of two implicit surfaces: the
// zero sets of equation and plane. The combined violation is the sum of
// both function values and the Jacobian is the sum of both gradients,
// evaluated by forward finite differences.
type Curve struct {
	event.Notifier
	equation     SurfaceFunc
	plane        SurfaceFunc
	period       float64
	dampingRatio float64
}

// NewCurve returns a rigid curve constraint on the given equation,
// intersected with the z=0 plane until SetPlane replaces it.
func NewCurve(equation SurfaceFunc) *Curve {
	return &Curve{
		equation: equation,
		plane:    func(x, y, z float64) float64 { return z },
	}
}

// SetEquation replaces the first implicit surface.
func (c *Curve) SetEquation(f SurfaceFunc) {
	c.equation = f
	c.Changed("equation")
}

// SetPlane replaces the second implicit surface.
func (c *Curve) SetPlane(f SurfaceFunc) {
	c.plane = f
	c.Changed("plane")
}

func (c *Curve) Solve(targets []*body.RigidBody, dt float64) {
	for _, t := range targets {
		effMass, ok := anchoredEffectiveMass(t)
		if !ok {
			continue
		}

		p := t.Position()
		viol := c.equation(p.X, p.Y, p.Z) + c.plane(p.X, p.Y, p.Z)
		j := gradient(c.equation, p).Add(gradient(c.plane, p))
		jj := j.NormSq()
		if jj == 0 {
			continue
		}

		gamma, beta := coefficients(c.period, c.dampingRatio, effMass, dt)
		antiDrift := beta / dt * viol
		lambda := -(t.Velocity().Dot(j) + antiDrift) / (gamma + dt*jj/effMass)
		t.ApplyImpulse(j.Scale(dt * lambda))
	}
}

func (c *Curve) GetParams() map[string]float64 {
	return map[string]float64{
		"period":       c.period,
		"dampingRatio": c.dampingRatio,
	}
}

func (c *Curve) SetParam(name string, value float64) error {
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
	default:
		return unknownParam(name)
	}
	c.Changed(name)
	return nil
}
