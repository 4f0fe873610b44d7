package force

import (
	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/event"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// Force applies a fixed vector to every target each call, independent of
// target state. Attach it with a downward vector for uniform gravity.
type Force struct {
	event.Notifier
	vec vecmath.Vec3
}

func NewForce(v vecmath.Vec3) *Force {
	return &Force{vec: v}
}

func (f *Force) Vector() vecmath.Vec3 { return f.vec }

func (f *Force) SetVector(v vecmath.Vec3) {
	f.vec = v
	f.Changed("force")
}

func (f *Force) Apply(targets []*body.RigidBody) {
	for _, t := range targets {
		t.ApplyForce(f.vec)
	}
}
