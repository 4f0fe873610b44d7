package engine

import "errors"

// Domain errors for engine operations.
var (
	// ErrInvalidState indicates a body reached a NaN or Inf state value.
	ErrInvalidState = errors.New("kinetic: invalid state (NaN or Inf detected)")

	// ErrInvalidTimestep indicates a step was requested with a timestep
	// that is zero, negative, or not finite.
	ErrInvalidTimestep = errors.New("kinetic: timestep must be positive and finite")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("kinetic: parameter out of valid bounds")

	// ErrUnknownParameter indicates a parameter name no component declares.
	ErrUnknownParameter = errors.New("kinetic: unknown parameter")

	// ErrContextCanceled indicates the run was interrupted.
	ErrContextCanceled = errors.New("kinetic: run canceled by context")
)

// StepError wraps an error with the step context it occurred in.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
