package constraint

import (
	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/event"
)

// Surface confines targets to a single implicit surface f(x,y,z)=0, with
// the gradient evaluated by forward finite differences.
type Surface struct {
	event.Notifier
	equation     SurfaceFunc
	period       float64
	dampingRatio float64
}

// NewSurface returns a rigid constraint on the zero set of equation.
func NewSurface(equation SurfaceFunc) *Surface {
	return &Surface{equation: equation}
}

// SetEquation replaces the implicit surface.
func (c *Surface) SetEquation(f SurfaceFunc) {
	c.equation = f
	c.Changed("equation")
}

func (c *Surface) Solve(targets []*body.RigidBody, dt float64) {
	for _, t := range targets {
		effMass, ok := anchoredEffectiveMass(t)
		if !ok {
			continue
		}

		p := t.Position()
		viol := c.equation(p.X, p.Y, p.Z)
		j := gradient(c.equation, p)
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

func (c *Surface) GetParams() map[string]float64 {
	return map[string]float64{
		"period":       c.period,
		"dampingRatio": c.dampingRatio,
	}
}

func (c *Surface) SetParam(name string, value float64) error {
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
