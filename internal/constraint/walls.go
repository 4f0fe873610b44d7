package constraint

import (
	"fmt"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/event"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// Side names one face of the box a [Walls] constraint bounds.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
	SideFront
	SideBack
)

// AllSides lists every side in solve order.
var AllSides = []Side{SideLeft, SideRight, SideTop, SideBottom, SideFront, SideBack}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	}
	return "unknown"
}

// ParseSide maps a configuration string to a Side.
func ParseSide(s string) (Side, error) {
	for _, side := range AllSides {
		if side.String() == s {
			return side, nil
		}
	}
	return 0, fmt.Errorf("%w: side %q", engine.ErrParameterBounds, s)
}

// Walls bounds bodies inside an origin-centered box by delegating to one
// [Wall] per enabled side. Resizing and rotating update every side as a
// batch; parameter updates fan out to all sides.
type Walls struct {
	order                []Side
	walls                map[Side]*Wall
	width, height, depth float64
}

// NewWalls builds a box of the given extents from the listed sides, or all
// six when none are named.
func NewWalls(width, height, depth float64, sides ...Side) *Walls {
	if len(sides) == 0 {
		sides = AllSides
	}
	w := &Walls{
		order:  append([]Side(nil), sides...),
		walls:  make(map[Side]*Wall, len(sides)),
		width:  width,
		height: height,
		depth:  depth,
	}
	for _, s := range sides {
		n, half := sidePlane(s, width, height, depth)
		w.walls[s] = NewWall(n, half)
	}
	return w
}

// sidePlane returns the inward normal and plane offset for one box side.
func sidePlane(s Side, width, height, depth float64) (vecmath.Vec3, float64) {
	switch s {
	case SideLeft:
		return vecmath.V3(1, 0, 0), width / 2
	case SideRight:
		return vecmath.V3(-1, 0, 0), width / 2
	case SideTop:
		return vecmath.V3(0, -1, 0), height / 2
	case SideBottom:
		return vecmath.V3(0, 1, 0), height / 2
	case SideFront:
		return vecmath.V3(0, 0, -1), depth / 2
	case SideBack:
		return vecmath.V3(0, 0, 1), depth / 2
	}
	return vecmath.V3(1, 0, 0), 0
}

// Wall returns the constraint for one side, or nil if the side is not
// enabled.
func (w *Walls) Wall(s Side) *Wall { return w.walls[s] }

// Size returns the current box extents.
func (w *Walls) Size() (width, height, depth float64) {
	return w.width, w.height, w.depth
}

func (w *Walls) Solve(targets []*body.RigidBody, dt float64) {
	for _, s := range w.order {
		w.walls[s].Solve(targets, dt)
	}
}

// Resize moves every enabled side to the new box extents in one batch.
func (w *Walls) Resize(width, height, depth float64) {
	w.width, w.height, w.depth = width, height, depth
	for _, s := range w.order {
		_, half := sidePlane(s, width, height, depth)
		w.walls[s].distance = half
		w.walls[s].Changed("distance")
	}
}

// Rotate applies q to every side's normal in one batch. Rotations are
// incremental: each call composes with the current orientation.
func (w *Walls) Rotate(q vecmath.Quat) {
	for _, s := range w.order {
		w.walls[s].SetNormal(q.Rotate(w.walls[s].Normal()))
	}
}

// SetMode switches the contact mode on every side.
func (w *Walls) SetMode(m OnContact) {
	for _, s := range w.order {
		w.walls[s].SetMode(m)
	}
}

// Subscribe registers fn for contact events of phase p on every side and
// returns a cancel function covering all of them.
func (w *Walls) Subscribe(p event.Phase, fn func(event.Contact)) func() {
	cancels := make([]func(), 0, len(w.order))
	for _, s := range w.order {
		cancels = append(cancels, w.walls[s].Subscribe(p, fn))
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

// GetParams reports the shared parameters of the first enabled side.
func (w *Walls) GetParams() map[string]float64 {
	if len(w.order) == 0 {
		return map[string]float64{}
	}
	return w.walls[w.order[0]].GetParams()
}

// SetParam fans the update out to every side. Distance is excluded: side
// offsets are owned by Resize.
func (w *Walls) SetParam(name string, value float64) error {
	if name == "distance" {
		return unknownParam(name)
	}
	for _, s := range w.order {
		if err := w.walls[s].SetParam(name, value); err != nil {
			return err
		}
	}
	return nil
}
