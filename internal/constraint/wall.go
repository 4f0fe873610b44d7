package constraint

import (
	"fmt"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/event"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// OnContact selects how a [Wall] responds when a body hits it.
type OnContact int

const (
	// Reflect bounces the body with the configured restitution.
	Reflect OnContact = iota
	// Silent absorbs the approach velocity without a bounce.
	Silent
)

func (m OnContact) String() string {
	switch m {
	case Reflect:
		return "reflect"
	case Silent:
		return "silent"
	}
	return "unknown"
}

// ParseOnContact maps a configuration string to an OnContact mode.
func ParseOnContact(s string) (OnContact, error) {
	switch s {
	case "reflect":
		return Reflect, nil
	case "silent":
		return Silent, nil
	}
	return 0, fmt.Errorf("%w: onContact %q", engine.ErrParameterBounds, s)
}

// Wall is an infinite plane boundary. The plane is the zero set of
// normal·p + distance, with the normal pointing into the allowed halfspace;
// a body of radius r penetrates when normal·p + distance - r goes negative.
//
// Each body runs a small contact state machine: entering (first overlap
// while closing) applies the reflect-or-silent impulse and emits the
// contact event triple, resting contact is stabilized without restitution,
// and exiting while separating snaps the body back to the surface in
// Reflect mode.
type Wall struct {
	event.Bus
	event.Notifier
	normal      vecmath.Vec3
	distance    float64
	restitution float64
	drift       float64
	slop        float64
	mode        OnContact
	touching    map[*body.RigidBody]bool
}

// NewWall returns a reflecting wall with restitution 0.5 and drift 0.5.
// The normal is normalized.
func NewWall(normal vecmath.Vec3, distance float64) *Wall {
	return &Wall{
		normal:      normal.Normalize(),
		distance:    distance,
		restitution: 0.5,
		drift:       0.5,
		touching:    make(map[*body.RigidBody]bool),
	}
}

func (w *Wall) Normal() vecmath.Vec3 { return w.normal }

// SetNormal replaces the plane normal, normalizing it.
func (w *Wall) SetNormal(n vecmath.Vec3) {
	w.normal = n.Normalize()
	w.Changed("normal")
}

func (w *Wall) Mode() OnContact { return w.mode }

func (w *Wall) SetMode(m OnContact) {
	w.mode = m
	w.Changed("onContact")
}

func (w *Wall) Solve(targets []*body.RigidBody, dt float64) {
	for _, t := range targets {
		effMass, ok := anchoredEffectiveMass(t)
		if !ok {
			continue
		}

		gap := w.normal.Dot(t.Position()) + w.distance - t.Radius()
		vn := t.Velocity().Dot(w.normal)

		if !w.touching[t] {
			if gap < 0 && vn < 0 {
				w.enter(t, gap, vn, effMass, dt)
			}
			continue
		}
		if vn > 0 || gap >= 0 {
			w.exit(t, gap)
			continue
		}
		w.stabilize(t, gap, vn, effMass, dt)
	}
}

func (w *Wall) enter(t *body.RigidBody, gap, vn, effMass, dt float64) {
	contact := event.Contact{Target: t, Overlap: -gap, Normal: w.normal}
	w.Emit(event.PreCollision, contact)

	var impulse vecmath.Vec3
	switch w.mode {
	case Reflect:
		corr := gap + w.slop
		if corr > 0 {
			corr = 0
		}
		lambda := -((1+w.restitution)*vn + w.drift/dt*corr) / (dt / effMass)
		impulse = w.normal.Scale(dt * lambda)
	case Silent:
		impulse = w.normal.Scale(-vn * effMass)
	}
	t.ApplyImpulse(impulse)
	w.touching[t] = true

	w.Emit(event.Collision, contact)
	w.Emit(event.PostCollision, contact)
}

// stabilize holds a resting contact in place without re-applying
// restitution, so a body settles instead of bouncing forever.
func (w *Wall) stabilize(t *body.RigidBody, gap, vn, effMass, dt float64) {
	corr := gap + w.slop
	if corr > 0 {
		corr = 0
	}
	lambda := -(vn + w.drift/dt*corr) / (dt / effMass)
	t.ApplyImpulse(w.normal.Scale(dt * lambda))
}

func (w *Wall) exit(t *body.RigidBody, gap float64) {
	if w.mode == Reflect && gap < 0 {
		t.SetPosition(t.Position().Add(w.normal.Scale(-gap)))
	}
	delete(w.touching, t)
}

func (w *Wall) GetParams() map[string]float64 {
	return map[string]float64{
		"restitution": w.restitution,
		"drift":       w.drift,
		"slop":        w.slop,
		"distance":    w.distance,
	}
}

func (w *Wall) SetParam(name string, value float64) error {
	switch name {
	case "restitution":
		if err := checkUnitRange(name, value); err != nil {
			return err
		}
		w.restitution = value
	case "drift":
		if err := checkUnitRange(name, value); err != nil {
			return err
		}
		w.drift = value
	case "slop":
		if err := checkNonNegative(name, value); err != nil {
			return err
		}
		w.slop = value
	case "distance":
		if err := checkFinite(name, value); err != nil {
			return err
		}
		w.distance = value
	default:
		return unknownParam(name)
	}
	w.Changed(name)
	return nil
}
