// Package vecmath provides the 3-vector, 3×3-matrix, and quaternion
// primitives underlying the physics kernel.
//
//   - [Vec3]: position, velocity, force, torque, constraint directions
//   - [Mat3]: inertia tensors and their inverses
//   - [Quat]: rigid-body orientation
//
// All arithmetic is value-returning: operations never write through shared
// scratch storage, so results are stable across further calls and the
// package is safe for concurrent simulations.
//
// # Degenerate directions
//
// [Vec3.Normalize] and [Vec3.NormalizeTo] fall back to the +X axis when the
// input norm is at or below [NormEps] rather than producing NaN components.
// Callers that need a different fallback should test [Vec3.NormSq] first.
package vecmath
