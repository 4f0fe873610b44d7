// Package world orchestrates the simulation tick: force generators write
// into body accumulators, constraints resolve against the updated state,
// and the integrator advances every awake body. The ordering is fixed;
// running the phases out of order silently corrupts results.
package world

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/kinetic/internal/body"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/integrator"
)

type forceBinding struct {
	gen     engine.ForceGenerator
	targets []*body.RigidBody
}

type constraintBinding struct {
	c       engine.Constraint
	targets []*body.RigidBody
}

// World owns the bodies, force generators, and constraints of one
// simulation and advances them step by step. Worlds are not safe for
// concurrent use; run independent worlds in parallel instead (see
// [Ensemble]).
type World struct {
	cfg         engine.Config
	integ       engine.Integrator
	bodies      []*body.RigidBody
	forces      []forceBinding
	constraints []constraintBinding
	metrics     []engine.Metric
	observers   []engine.Observer
	idle        map[*body.RigidBody]int
	scratch     []*body.RigidBody
	time        float64
	steps       int
}

func New(cfg engine.Config) *World {
	return &World{
		cfg:   cfg,
		integ: integrator.NewSymplecticEuler(),
		idle:  make(map[*body.RigidBody]int),
	}
}

// SetIntegrator replaces the default symplectic Euler stepper.
func (w *World) SetIntegrator(i engine.Integrator) { w.integ = i }

func (w *World) AddBody(b *body.RigidBody) {
	w.bodies = append(w.bodies, b)
}

// RemoveBody detaches b from the world and from every force and constraint
// binding. Removing an unknown body is a no-op.
func (w *World) RemoveBody(b *body.RigidBody) {
	w.bodies = removeBody(w.bodies, b)
	delete(w.idle, b)
	for i := range w.forces {
		w.forces[i].targets = removeBody(w.forces[i].targets, b)
	}
	for i := range w.constraints {
		w.constraints[i].targets = removeBody(w.constraints[i].targets, b)
	}
}

func removeBody(s []*body.RigidBody, b *body.RigidBody) []*body.RigidBody {
	for i, x := range s {
		if x == b {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// Bodies returns the live body list in attach order. Callers must not
// mutate the slice.
func (w *World) Bodies() []*body.RigidBody { return w.bodies }

// AddForce attaches a generator to the given targets, or to every body in
// the world when none are named.
func (w *World) AddForce(gen engine.ForceGenerator, targets ...*body.RigidBody) {
	w.forces = append(w.forces, forceBinding{gen: gen, targets: targets})
}

func (w *World) RemoveForce(gen engine.ForceGenerator) {
	for i, fb := range w.forces {
		if fb.gen == gen {
			w.forces = append(w.forces[:i], w.forces[i+1:]...)
			return
		}
	}
}

// AddConstraint attaches a constraint to the given targets, or to every
// body in the world when none are named.
func (w *World) AddConstraint(c engine.Constraint, targets ...*body.RigidBody) {
	w.constraints = append(w.constraints, constraintBinding{c: c, targets: targets})
}

func (w *World) RemoveConstraint(c engine.Constraint) {
	for i, cb := range w.constraints {
		if cb.c == c {
			w.constraints = append(w.constraints[:i], w.constraints[i+1:]...)
			return
		}
	}
}

// Constraints returns the attached constraint generators in solve order.
func (w *World) Constraints() []engine.Constraint {
	out := make([]engine.Constraint, len(w.constraints))
	for i, cb := range w.constraints {
		out[i] = cb.c
	}
	return out
}

func (w *World) AddMetric(m engine.Metric) { w.metrics = append(w.metrics, m) }

func (w *World) AddObserver(o engine.Observer) { w.observers = append(w.observers, o) }

func (w *World) Time() float64 { return w.time }
func (w *World) Steps() int    { return w.steps }

// Energy returns the total kinetic energy of all bodies.
func (w *World) Energy() float64 {
	total := 0.0
	for _, b := range w.bodies {
		total += b.Energy()
	}
	return total
}

// Step advances the world by dt: metrics and observers see the pre-step
// state, then forces accumulate, constraints solve, sleeping is updated,
// and every awake body integrates.
func (w *World) Step(dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: dt=%v", engine.ErrInvalidTimestep, dt)
	}

	for _, m := range w.metrics {
		m.Observe(w.bodies, w.time)
	}
	for _, o := range w.observers {
		o.OnStep(w.bodies, w.time)
	}

	for _, fb := range w.forces {
		w.applyForce(fb)
	}
	for _, cb := range w.constraints {
		targets := cb.targets
		if len(targets) == 0 {
			targets = w.bodies
		}
		cb.c.Solve(targets, dt)
	}

	w.updateSleep()

	for _, b := range w.bodies {
		if !b.IsAwake() {
			continue
		}
		w.integ.Step(b, dt)
	}

	w.steps++
	w.time += dt

	if n := w.cfg.RenormalizeEvery; n > 0 && w.steps%n == 0 {
		for _, b := range w.bodies {
			b.NormalizeOrientation()
		}
	}

	if w.cfg.ValidateState {
		if err := w.validate(); err != nil {
			return &engine.StepError{Step: w.steps, Time: w.time, Wrapped: err}
		}
	}
	return nil
}

// applyForce invokes the generator over its awake targets only, so
// sleeping bodies stay asleep until a constraint or setter wakes them.
func (w *World) applyForce(fb forceBinding) {
	targets := fb.targets
	if len(targets) == 0 {
		targets = w.bodies
	}
	w.scratch = w.scratch[:0]
	for _, b := range targets {
		if b.IsAwake() {
			w.scratch = append(w.scratch, b)
		}
	}
	if len(w.scratch) > 0 {
		fb.gen.Apply(w.scratch)
	}
}

// updateSleep puts bodies to sleep once their speed stays under the
// configured epsilon for SleepDelay consecutive steps. A zero epsilon
// disables sleeping.
func (w *World) updateSleep() {
	eps := w.cfg.SleepEpsilon
	if eps <= 0 {
		return
	}
	for _, b := range w.bodies {
		speed := b.Velocity().NormSq() + b.AngularVelocity().NormSq()
		if speed >= eps {
			w.idle[b] = 0
			continue
		}
		w.idle[b]++
		if w.idle[b] >= w.cfg.SleepDelay {
			b.Sleep()
		}
	}
}

func (w *World) validate() error {
	for _, b := range w.bodies {
		if !b.Position().IsValid() || !b.Velocity().IsValid() ||
			!b.AngularVelocity().IsValid() || !b.Orientation().IsValid() {
			return engine.ErrInvalidState
		}
	}
	return nil
}

// Run drives fixed steps for the configured duration, recording a frame
// per step. The run stops early on context cancellation or once a state
// error is recorded.
func (w *World) Run(ctx context.Context) (*engine.Result, error) {
	if err := w.validateConfig(); err != nil {
		return nil, err
	}

	steps := int(w.cfg.Duration / w.cfg.Dt)
	result := &engine.Result{
		Frames:  make([]engine.Frame, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range w.metrics {
		m.Reset()
	}

	result.Frames = append(result.Frames, w.frame())
	initialEnergy := w.Energy()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("%w: %v", engine.ErrContextCanceled, ctx.Err())
		default:
		}

		if err := w.Step(w.cfg.Dt); err != nil {
			result.Errors = append(result.Errors, err)
			break
		}
		result.StepsTaken++
		result.Frames = append(result.Frames, w.frame())
	}

	if finalEnergy := w.Energy(); initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}
	for _, m := range w.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (w *World) validateConfig() error {
	if w.cfg.Dt <= 0 || math.IsNaN(w.cfg.Dt) || math.IsInf(w.cfg.Dt, 0) {
		return fmt.Errorf("%w: dt=%v", engine.ErrInvalidTimestep, w.cfg.Dt)
	}
	if w.cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration=%v", engine.ErrInvalidTimestep, w.cfg.Duration)
	}
	return nil
}

func (w *World) frame() engine.Frame {
	f := engine.Frame{Time: w.time, Bodies: make([]engine.BodyState, len(w.bodies))}
	for i, b := range w.bodies {
		f.Bodies[i] = engine.Snapshot(b)
	}
	return f
}
