package constraint_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/constraint"
	"github.com/san-kum/kinetic/internal/event"
	"github.com/san-kum/kinetic/internal/vecmath"
)

const step = 1000.0 / 60.0

func advance(bodies ...*body.RigidBody) {
	for _, b := range bodies {
		b.SetPosition(b.Position().Add(b.Velocity().Scale(step)))
	}
}

var _ = Describe("Distance", func() {
	var b *body.RigidBody
	var c *constraint.Distance

	BeforeEach(func() {
		b = body.NewRigidBody()
		b.SetPosition(vecmath.V3(3, 0, 0))
		c = constraint.NewDistance(2)
		c.SetAnchor(vecmath.V3(0, 0, 0))
	})

	It("removes a rigid violation within one step", func() {
		c.Solve([]*body.RigidBody{b}, step)
		advance(b)
		Expect(b.Position().Norm()).To(BeNumerically("~", 2, 1e-9))
	})

	It("softens the correction when a period is set", func() {
		Expect(c.SetParam("period", 400)).To(Succeed())
		c.Solve([]*body.RigidBody{b}, step)
		advance(b)
		Expect(b.Position().Norm()).To(BeNumerically(">", 2))
		Expect(b.Position().Norm()).To(BeNumerically("<", 3))
	})
})

var _ = Describe("Collision", func() {
	var source, target *body.RigidBody
	var c *constraint.Collision

	BeforeEach(func() {
		source = body.NewCircleBody(1)
		source.SetVelocity(vecmath.V3(1, 0, 0))
		target = body.NewCircleBody(1)
		target.SetPosition(vecmath.V3(1.5, 0, 0))
		target.SetVelocity(vecmath.V3(-1, 0, 0))
		c = constraint.NewCollision(source)
	})

	It("conserves momentum across the pair", func() {
		momentum := func() vecmath.Vec3 {
			return source.Velocity().Scale(source.Mass()).
				Add(target.Velocity().Scale(target.Mass()))
		}
		before := momentum()
		c.Solve([]*body.RigidBody{target}, step)
		Expect(momentum().Sub(before).Norm()).To(BeNumerically("<", 1e-12))
	})

	It("dissipates kinetic energy below unit restitution", func() {
		Expect(c.SetParam("restitution", 0.4)).To(Succeed())
		Expect(c.SetParam("drift", 0)).To(Succeed())
		before := source.Energy() + target.Energy()
		c.Solve([]*body.RigidBody{target}, step)
		Expect(source.Energy() + target.Energy()).To(BeNumerically("<", before))
	})

	It("announces contacts in phase order", func() {
		var phases []event.Phase
		for _, p := range []event.Phase{event.PreCollision, event.Collision, event.PostCollision} {
			p := p
			c.Subscribe(p, func(event.Contact) { phases = append(phases, p) })
		}
		c.Solve([]*body.RigidBody{target}, step)
		Expect(phases).To(Equal([]event.Phase{
			event.PreCollision, event.Collision, event.PostCollision,
		}))
	})
})

var _ = Describe("Wall", func() {
	It("reflects an approaching unit-mass particle", func() {
		b := body.NewRigidBody()
		b.SetPosition(vecmath.V3(-0.1, 0, 0))
		b.SetVelocity(vecmath.V3(-5, 0, 0))

		w := constraint.NewWall(vecmath.V3(1, 0, 0), 0)
		Expect(w.SetParam("restitution", 1)).To(Succeed())
		w.Solve([]*body.RigidBody{b}, step)

		Expect(b.Velocity().X).To(BeNumerically("~", 5, 0.1))
	})
})
