// Package engine provides the core contracts of the physics kernel.
//
// The package defines the interfaces and types the simulation is assembled
// from:
//
//   - [ForceGenerator]: continuous forces written into body accumulators
//   - [Constraint]: impulse-based restrictions on relative motion
//   - [Integrator]: per-body symplectic time stepping
//   - [Metric]: scalar reductions observed over a run
//   - [Configurable]: runtime-tunable parameters with validated updates
//
// # Step order
//
// A world step applies force generators, then solves constraints, then
// integrates each awake body. Forces and torques accumulate between steps
// and are consumed exactly once by the integrator.
//
// # Example
//
//	w := world.New(engine.DefaultConfig())
//	b := body.NewCircleBody(1)
//	w.AddBody(b)
//	w.AddForce(force.NewDrag(0.01), b)
//	result, _ := w.Run(ctx)
//
// # Thread Safety
//
// Worlds are NOT thread-safe. For parallel runs, use the [world.Ensemble]
// type, which gives every run its own world.
package engine
