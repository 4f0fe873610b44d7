package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/config"
	"github.com/san-kum/kinetic/internal/constraint"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/force"
	"github.com/san-kum/kinetic/internal/vecmath"
	"github.com/san-kum/kinetic/internal/world"
)

// FromConfig assembles a world from a declarative config. Body labels bind
// the force and constraint target lists; an empty target list attaches to
// every body. Numeric options pass through SetParam, so they get the same
// validation as runtime tuning.
func FromConfig(cfg *config.Config) (*world.World, error) {
	w := world.New(cfg.Engine())

	labels := make(map[string]*body.RigidBody, len(cfg.Bodies))
	for i, bc := range cfg.Bodies {
		b, err := buildBody(bc)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		if bc.Label != "" {
			if _, dup := labels[bc.Label]; dup {
				return nil, fmt.Errorf("duplicate body label %q", bc.Label)
			}
			labels[bc.Label] = b
		}
		w.AddBody(b)
	}

	for i, fc := range cfg.Forces {
		gen, err := buildForce(fc)
		if err != nil {
			return nil, fmt.Errorf("force %d (%s): %w", i, fc.Kind, err)
		}
		targets, err := resolve(labels, fc.Targets)
		if err != nil {
			return nil, fmt.Errorf("force %d (%s): %w", i, fc.Kind, err)
		}
		w.AddForce(gen, targets...)
	}

	for i, cc := range cfg.Constraints {
		c, err := buildConstraint(cc, labels)
		if err != nil {
			return nil, fmt.Errorf("constraint %d (%s): %w", i, cc.Kind, err)
		}
		targets, err := resolve(labels, cc.Targets)
		if err != nil {
			return nil, fmt.Errorf("constraint %d (%s): %w", i, cc.Kind, err)
		}
		w.AddConstraint(c, targets...)
	}

	return w, nil
}

func buildBody(bc config.BodyConfig) (*body.RigidBody, error) {
	var b *body.RigidBody
	switch bc.Shape {
	case "circle", "":
		r := bc.Radius
		if r == 0 {
			r = 0.5
		}
		b = body.NewCircleBody(r)
	case "rectangle":
		b = body.NewRectangleBody(bc.Width, bc.Height)
	default:
		return nil, fmt.Errorf("unknown shape: %s", bc.Shape)
	}

	switch {
	case bc.Immovable:
		b.SetMass(math.Inf(1))
	case bc.Mass < 0:
		return nil, fmt.Errorf("negative mass %v", bc.Mass)
	case bc.Mass > 0:
		b.SetMass(bc.Mass)
	}

	p, err := optVec3(bc.Position)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	b.SetPosition(p)

	v, err := optVec3(bc.Velocity)
	if err != nil {
		return nil, fmt.Errorf("velocity: %w", err)
	}
	b.SetVelocity(v)

	return b, nil
}

func buildForce(fc config.ForceConfig) (engine.ForceGenerator, error) {
	switch fc.Kind {
	case "force":
		v, err := optVec3(fc.Vector)
		if err != nil {
			return nil, fmt.Errorf("vector: %w", err)
		}
		return force.NewForce(v), nil

	case "drag":
		d := force.NewDrag(force.DefaultDragStrength)
		if err := setDragOptions(d, fc); err != nil {
			return nil, err
		}
		return d, nil

	case "rotationalDrag":
		d := force.NewRotationalDrag(force.DefaultDragStrength)
		if err := setDragOptions(&d.Drag, fc); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown force kind: %s", fc.Kind)
}

func setDragOptions(d *force.Drag, fc config.ForceConfig) error {
	if fc.Function != "" {
		fn, err := force.ParseFunction(fc.Function)
		if err != nil {
			return err
		}
		if err := d.SetFunction(fn); err != nil {
			return err
		}
	}
	return applyParams(d, fc.Params)
}

// tethered covers the constraints that bind one end to either a fixed
// anchor or a source body.
type tethered interface {
	SetAnchor(vecmath.Vec3)
	SetSource(*body.RigidBody)
}

func bindTether(c tethered, cc config.ConstraintConfig, labels map[string]*body.RigidBody) error {
	switch {
	case cc.Source != "":
		src, ok := labels[cc.Source]
		if !ok {
			return fmt.Errorf("unknown source %q", cc.Source)
		}
		c.SetSource(src)
	case cc.Anchor != nil:
		a, err := optVec3(cc.Anchor)
		if err != nil {
			return fmt.Errorf("anchor: %w", err)
		}
		c.SetAnchor(a)
	default:
		return fmt.Errorf("needs an anchor or a source")
	}
	return nil
}

func buildConstraint(cc config.ConstraintConfig, labels map[string]*body.RigidBody) (engine.Constraint, error) {
	switch cc.Kind {
	case "distance":
		c := constraint.NewDistance(0)
		if err := bindTether(c, cc, labels); err != nil {
			return nil, err
		}
		if err := applyParams(c, cc.Params); err != nil {
			return nil, err
		}
		return c, nil

	case "snap":
		c := constraint.NewSnap()
		if err := bindTether(c, cc, labels); err != nil {
			return nil, err
		}
		if err := applyParams(c, cc.Params); err != nil {
			return nil, err
		}
		return c, nil

	case "collision":
		if cc.Source == "" {
			return nil, fmt.Errorf("collision needs a source body")
		}
		src, ok := labels[cc.Source]
		if !ok {
			return nil, fmt.Errorf("unknown source %q", cc.Source)
		}
		c := constraint.NewCollision(src)
		if err := applyParams(c, cc.Params); err != nil {
			return nil, err
		}
		return c, nil

	case "wall":
		if cc.Normal == nil {
			return nil, fmt.Errorf("wall needs a normal")
		}
		n, err := optVec3(cc.Normal)
		if err != nil {
			return nil, fmt.Errorf("normal: %w", err)
		}
		c := constraint.NewWall(n, 0)
		if err := setContactMode(c, cc.OnContact); err != nil {
			return nil, err
		}
		if err := applyParams(c, cc.Params); err != nil {
			return nil, err
		}
		return c, nil

	case "walls":
		size := cc.Size
		if size == nil {
			size = []float64{20, 20, 20}
		}
		if len(size) != 3 {
			return nil, fmt.Errorf("size: expected 3 components, got %d", len(size))
		}
		sides := make([]constraint.Side, 0, len(cc.Sides))
		for _, name := range cc.Sides {
			s, err := constraint.ParseSide(name)
			if err != nil {
				return nil, err
			}
			sides = append(sides, s)
		}
		c := constraint.NewWalls(size[0], size[1], size[2], sides...)
		if err := setContactMode(c, cc.OnContact); err != nil {
			return nil, err
		}
		if err := applyParams(c, cc.Params); err != nil {
			return nil, err
		}
		return c, nil

	case "curve":
		if cc.Equation == "" {
			return nil, fmt.Errorf("curve needs an equation")
		}
		fn, err := ParseEquation(cc.Equation)
		if err != nil {
			return nil, err
		}
		c := constraint.NewCurve(fn)
		if err := applyParams(c, cc.Params); err != nil {
			return nil, err
		}
		return c, nil

	case "surface":
		if cc.Equation == "" {
			return nil, fmt.Errorf("surface needs an equation")
		}
		fn, err := ParseEquation(cc.Equation)
		if err != nil {
			return nil, err
		}
		c := constraint.NewSurface(fn)
		if err := applyParams(c, cc.Params); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("unknown constraint kind: %s", cc.Kind)
}

type modal interface {
	SetMode(constraint.OnContact)
}

func setContactMode(c modal, name string) error {
	if name == "" {
		return nil
	}
	m, err := constraint.ParseOnContact(name)
	if err != nil {
		return err
	}
	c.SetMode(m)
	return nil
}

func applyParams(c engine.Configurable, params map[string]float64) error {
	for name, value := range params {
		if err := c.SetParam(name, value); err != nil {
			return err
		}
	}
	return nil
}

func resolve(labels map[string]*body.RigidBody, names []string) ([]*body.RigidBody, error) {
	targets := make([]*body.RigidBody, 0, len(names))
	for _, name := range names {
		b, ok := labels[name]
		if !ok {
			return nil, fmt.Errorf("unknown target %q", name)
		}
		targets = append(targets, b)
	}
	return targets, nil
}

func optVec3(v []float64) (vecmath.Vec3, error) {
	switch len(v) {
	case 0:
		return vecmath.Vec3{}, nil
	case 3:
		return vecmath.V3(v[0], v[1], v[2]), nil
	}
	return vecmath.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(v))
}
