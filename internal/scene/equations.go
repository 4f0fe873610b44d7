package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/kinetic/internal/constraint"
)

// ParseEquation resolves a named implicit-surface spec, "name" or
// "name:radius", into the zero-set function the curve and surface
// constraints consume. The radius defaults to 1.
func ParseEquation(spec string) (constraint.SurfaceFunc, error) {
	name, arg, _ := strings.Cut(spec, ":")

	radius := 1.0
	if arg != "" {
		r, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("equation %q: %w", spec, err)
		}
		radius = r
	}

	switch name {
	case "plane":
		return func(x, y, z float64) float64 { return z }, nil
	case "circle":
		return func(x, y, z float64) float64 { return x*x + y*y - radius*radius }, nil
	case "sphere":
		return func(x, y, z float64) float64 { return x*x + y*y + z*z - radius*radius }, nil
	}
	return nil, fmt.Errorf("unknown equation: %s", name)
}
