// Package event carries the contact and change notifications emitted while
// the engine steps. Subscription order is preserved so runs stay
// deterministic when handlers mutate body state.
package event

import (
	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// Phase identifies when in the contact pipeline an event fires.
type Phase int

const (
	// PreCollision fires after detection, before any impulse is applied.
	PreCollision Phase = iota
	// Collision fires for each resolved contact within a step.
	Collision
	// PostCollision fires after a contact has been resolved.
	PostCollision
)

func (p Phase) String() string {
	switch p {
	case PreCollision:
		return "preCollision"
	case Collision:
		return "collision"
	case PostCollision:
		return "postCollision"
	}
	return "unknown"
}

// Contact describes one detected overlap between a body and another body or
// a fixed boundary. Source is nil for anchored constraints such as walls.
type Contact struct {
	Target  *body.RigidBody
	Source  *body.RigidBody
	Overlap float64
	Normal  vecmath.Vec3
}

type subscription struct {
	phase Phase
	fn    func(Contact)
}

// Bus fans contact events out to subscribers in subscription order. The
// zero value is ready to use.
type Bus struct {
	subs []*subscription
}

// Subscribe registers fn for events of phase p and returns a cancel
// function. Cancel is idempotent.
func (b *Bus) Subscribe(p Phase, fn func(Contact)) func() {
	s := &subscription{phase: p, fn: fn}
	b.subs = append(b.subs, s)
	return func() { s.fn = nil }
}

// Emit delivers c to every live subscriber of phase p.
func (b *Bus) Emit(p Phase, c Contact) {
	for _, s := range b.subs {
		if s.phase == p && s.fn != nil {
			s.fn(c)
		}
	}
}

// Notifier broadcasts named change events. Components embed it and fire
// Changed after a parameter update takes effect, so listeners always
// observe the new value. The zero value is ready to use.
type Notifier struct {
	subs []*changeSub
}

type changeSub struct {
	fn func(name string)
}

// OnChange registers fn and returns a cancel function.
func (n *Notifier) OnChange(fn func(name string)) func() {
	s := &changeSub{fn: fn}
	n.subs = append(n.subs, s)
	return func() { s.fn = nil }
}

// Changed notifies every live listener that the named value changed.
func (n *Notifier) Changed(name string) {
	for _, s := range n.subs {
		if s.fn != nil {
			s.fn(name)
		}
	}
}
