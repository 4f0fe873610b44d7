package vecmath

import "math"

// NormEps is the squared-length floor below which a vector is treated as
// degenerate by Normalize and NormalizeTo.
const NormEps = 1e-7

// Vec3 is a 3-component vector. All operations are value-returning; nothing
// is shared between calls, so Vec3 math is safe across goroutines.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) NormSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

func (a Vec3) Norm() float64 {
	return math.Sqrt(a.NormSq())
}

// Normalize returns the unit vector in the direction of a. A degenerate
// vector (norm <= NormEps) falls back to the +X axis instead of dividing by
// near-zero.
func (a Vec3) Normalize() Vec3 {
	return a.NormalizeTo(1)
}

// NormalizeTo returns a vector of the given length in the direction of a,
// with the same degenerate fallback as Normalize: [length, 0, 0].
func (a Vec3) NormalizeTo(length float64) Vec3 {
	n := a.Norm()
	if n <= NormEps {
		return Vec3{length, 0, 0}
	}
	return a.Scale(length / n)
}

// Cap limits the norm of a to limit. Unbounded limits (+Inf) and vectors
// already within the limit pass through unchanged.
func (a Vec3) Cap(limit float64) Vec3 {
	if math.IsInf(limit, 1) {
		return a
	}
	if a.Norm() <= limit {
		return a
	}
	return a.NormalizeTo(limit)
}

// RotateX rotates a about the x axis by theta radians.
func (a Vec3) RotateX(theta float64) Vec3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Vec3{a.X, a.Y*c - a.Z*s, a.Y*s + a.Z*c}
}

// RotateY rotates a about the y axis by theta radians.
func (a Vec3) RotateY(theta float64) Vec3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Vec3{a.X*c + a.Z*s, a.Y, -a.X*s + a.Z*c}
}

// RotateZ rotates a about the z axis by theta radians.
func (a Vec3) RotateZ(theta float64) Vec3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Vec3{a.X*c - a.Y*s, a.X*s + a.Y*c, a.Z}
}

// Set overwrites the receiver with b.
func (a *Vec3) Set(b Vec3) {
	a.X, a.Y, a.Z = b.X, b.Y, b.Z
}

// SetXYZ overwrites the receiver's components.
func (a *Vec3) SetXYZ(x, y, z float64) {
	a.X, a.Y, a.Z = x, y, z
}

// Clear zeroes the receiver.
func (a *Vec3) Clear() {
	a.X, a.Y, a.Z = 0, 0, 0
}

func (a Vec3) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}

func (a Vec3) IsValid() bool {
	for _, v := range [3]float64{a.X, a.Y, a.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Distance returns |a - b|.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Norm()
}
