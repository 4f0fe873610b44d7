package engine

import (
	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/vecmath"
)

// ForceGenerator applies continuous forces to the bodies it is attached to.
// The world invokes Apply once per step, before constraints are resolved.
// Generators write into the body force and torque accumulators only; they
// never move bodies directly.
type ForceGenerator interface {
	Apply(targets []*body.RigidBody)
}

// Constraint restricts the relative motion of its targets by applying
// impulses after force generators have run. Implementations must tolerate
// degenerate configurations (coincident bodies, zero-length separations)
// by skipping the solve rather than producing NaN.
type Constraint interface {
	Solve(targets []*body.RigidBody, dt float64)
}

// Integrator advances a single body through one timestep, consuming and
// clearing its force and torque accumulators.
type Integrator interface {
	Step(b *body.RigidBody, dt float64)
}

// Metric observes the body population each step and reduces it to a scalar.
type Metric interface {
	Name() string
	Observe(bodies []*body.RigidBody, t float64)
	Value() float64
	Reset()
}

// Observer receives the body population at the top of each step, before
// forces and integration run.
type Observer interface {
	OnStep(bodies []*body.RigidBody, t float64)
}

// Configurable exposes runtime-tunable numeric parameters. SetParam rejects
// unknown names and out-of-range values; GetParams returns a fresh map each
// call.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Config bundles the stepping options for a world run. Times are in
// milliseconds.
type Config struct {
	Dt               float64
	Duration         float64
	Seed             int64
	SleepEpsilon     float64
	SleepDelay       int
	RenormalizeEvery int
	ValidateState    bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            1000.0 / 60.0,
		Duration:      10000.0,
		SleepEpsilon:  1e-7,
		SleepDelay:    60,
		ValidateState: true,
	}
}

// BodyState is an immutable snapshot of one body's kinematic state.
type BodyState struct {
	Position        vecmath.Vec3
	Velocity        vecmath.Vec3
	Orientation     vecmath.Quat
	AngularVelocity vecmath.Vec3
}

// Snapshot captures the current state of b.
func Snapshot(b *body.RigidBody) BodyState {
	return BodyState{
		Position:        b.Position(),
		Velocity:        b.Velocity(),
		Orientation:     b.Orientation(),
		AngularVelocity: b.AngularVelocity(),
	}
}

// Frame is the state of every body at one instant.
type Frame struct {
	Time   float64
	Bodies []BodyState
}

// Result collects the output of a completed run.
type Result struct {
	Frames      []Frame
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}
