// Package body defines the dynamic state advanced by the engine.
//
// [Particle] carries translational state and a force accumulator.
// [RigidBody] embeds Particle and adds orientation, angular momentum, a
// torque accumulator, and an inertia tensor derived from an attached
// [Shape]. Force generators and constraints write into the accumulators or
// apply impulses; the integrator consumes the accumulators once per step.
//
// Mass, inverse mass, inertia, and inverse inertia always change together.
// A body with infinite mass has zero inverse mass and zero inverse inertia
// and never moves, but still participates in constraints as an anchor.
package body
