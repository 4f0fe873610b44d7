// Package force provides the force generators: a constant applied force,
// and linear or quadratic drag on translational and angular velocity.
// Generators write only into body accumulators; the integrator consumes
// what they wrote.
package force

import (
	"fmt"

	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// Function selects how drag scales with speed.
type Function int

const (
	// Linear drag is proportional to velocity.
	Linear Function = iota
	// Quadratic drag is proportional to velocity times its own norm.
	Quadratic
)

var functions = [...]func(vecmath.Vec3) vecmath.Vec3{
	Linear:    func(v vecmath.Vec3) vecmath.Vec3 { return v },
	Quadratic: func(v vecmath.Vec3) vecmath.Vec3 { return v.Scale(v.Norm()) },
}

func (f Function) valid() bool {
	return f >= 0 && int(f) < len(functions)
}

func (f Function) String() string {
	switch f {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	}
	return "unknown"
}

// ParseFunction maps a configuration string to a Function.
func ParseFunction(s string) (Function, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "quadratic":
		return Quadratic, nil
	}
	return 0, fmt.Errorf("%w: force function %q", engine.ErrParameterBounds, s)
}
