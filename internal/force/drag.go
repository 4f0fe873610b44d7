package force

import (
	"fmt"
	"math"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/event"
)

// DefaultDragStrength is the strength used when a scene does not pick one.
const DefaultDragStrength = 0.01

// Drag opposes translational motion with force -strength*fn(velocity),
// where fn is selected by [Function].
type Drag struct {
	event.Notifier
	strength float64
	fn       Function
}

// NewDrag returns a linear drag generator with the given strength.
func NewDrag(strength float64) *Drag {
	return &Drag{strength: strength, fn: Linear}
}

func (d *Drag) Strength() float64 { return d.strength }

func (d *Drag) Function() Function { return d.fn }

// SetFunction switches the drag law and emits a change event.
func (d *Drag) SetFunction(fn Function) error {
	if !fn.valid() {
		return fmt.Errorf("%w: force function %d", engine.ErrParameterBounds, fn)
	}
	d.fn = fn
	d.Changed("forceFunction")
	return nil
}

func (d *Drag) Apply(targets []*body.RigidBody) {
	for _, t := range targets {
		t.ApplyForce(functions[d.fn](t.Velocity()).Scale(-d.strength))
	}
}

func (d *Drag) GetParams() map[string]float64 {
	return map[string]float64{
		"strength":      d.strength,
		"forceFunction": float64(d.fn),
	}
}

func (d *Drag) SetParam(name string, value float64) error {
	switch name {
	case "strength":
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: strength %v", engine.ErrParameterBounds, value)
		}
		d.strength = value
	case "forceFunction":
		return d.SetFunction(Function(value))
	default:
		return fmt.Errorf("%w: %q", engine.ErrUnknownParameter, name)
	}
	d.Changed(name)
	return nil
}
