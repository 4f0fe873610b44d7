package vecmath

import "math"

// Quat is a quaternion (w, x, y, z) used for rigid-body orientation.
type Quat struct {
	W, X, Y, Z float64
}

func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAngleAxis builds the rotation of angle radians about axis.
// The axis need not be unit length.
func QuatFromAngleAxis(angle float64, axis Vec3) Quat {
	u := axis.Normalize()
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{math.Cos(half), u.X * s, u.Y * s, u.Z * s}
}

// Mul returns the Hamilton product q × o.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// MulPure returns q × (0, v), the product with a pure-vector quaternion.
// The integrator uses this for the dq/dt = (1/2)·q·ω term.
func (q Quat) MulPure(v Vec3) Quat {
	return q.Mul(Quat{0, v.X, v.Y, v.Z})
}

func (q Quat) Add(o Quat) Quat {
	return Quat{q.W + o.W, q.X + o.X, q.Y + o.Y, q.Z + o.Z}
}

func (q Quat) Scale(s float64) Quat {
	return Quat{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

func (q Quat) Conjugate() Quat {
	return Quat{q.W, -q.X, -q.Y, -q.Z}
}

func (q Quat) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n <= NormEps {
		return QuatIdentity()
	}
	return q.Scale(1 / n)
}

// Rotate applies the rotation q to v: q·(0,v)·q*. Assumes q is unit length;
// a drifted quaternion scales the result by |q|².
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ToMat3 converts q to a rotation matrix.
func (q Quat) ToMat3() Mat3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

func (q Quat) IsZeroRotation() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0
}

func (q Quat) IsValid() bool {
	for _, v := range [4]float64{q.W, q.X, q.Y, q.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
