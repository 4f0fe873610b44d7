package constraint

import (
	"errors"
	"testing"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/vecmath"
)

func TestSnapDefaults(t *testing.T) {
	c := NewSnap()
	params := c.GetParams()

	if params["period"] != 300 || params["dampingRatio"] != 0.1 || params["length"] != 0 {
		t.Errorf("defaults = %v, want period 300, dampingRatio 0.1, length 0", params)
	}
}

func TestSnapNeverRigid(t *testing.T) {
	c := NewSnap()
	if err := c.SetParam("period", 0); !errors.Is(err, engine.ErrParameterBounds) {
		t.Errorf("period=0 error = %v, want ErrParameterBounds", err)
	}
	if got := c.GetParams()["period"]; got != 300 {
		t.Errorf("period = %v after rejected update, want 300", got)
	}
}

func TestSnapPullsTowardAnchor(t *testing.T) {
	b := body.NewRigidBody()
	b.SetPosition(vecmath.V3(1, 0, 0))

	c := NewSnap()
	c.SetAnchor(vecmath.V3(0, 0, 0))
	c.Solve([]*body.RigidBody{b}, dt)

	if got := b.Velocity().X; got >= 0 {
		t.Errorf("velocity.x = %v, want negative (toward anchor)", got)
	}
}

func TestSnapSettlesOntoAnchor(t *testing.T) {
	b := body.NewRigidBody()
	b.SetPosition(vecmath.V3(2, 0, 0))

	c := NewSnap()
	c.SetAnchor(vecmath.V3(0, 0, 0))
	mustSet(t, c, "dampingRatio", 1)

	for i := 0; i < 400; i++ {
		c.Solve([]*body.RigidBody{b}, dt)
		integrate(dt, b)
	}

	if got := b.Position().Norm(); got > 0.05 {
		t.Errorf("distance from anchor after settling = %v, want ~0", got)
	}
}

func TestSnapPairConservesMomentum(t *testing.T) {
	a := body.NewRigidBody()
	a.SetMass(2)
	b := body.NewRigidBody()
	b.SetMass(5)
	b.SetPosition(vecmath.V3(4, 0, 0))

	c := NewSnap()
	c.SetSource(a)

	before := a.Velocity().Scale(2).Add(b.Velocity().Scale(5))
	c.Solve([]*body.RigidBody{b}, dt)
	after := a.Velocity().Scale(2).Add(b.Velocity().Scale(5))

	if diff := after.Sub(before).Norm(); diff > 1e-12 {
		t.Errorf("momentum changed by %v", diff)
	}
}
