package operator

import "errors"

// Sentinel errors for operator construction and execution.
var (
	// ErrNoEquations is returned by New for an empty equation list.
	ErrNoEquations = errors.New("operator: no equations")

	// ErrBadLHS is returned when an equation's LHS is not a *field.Function.
	ErrBadLHS = errors.New("operator: left-hand side must be a field")

	// ErrUnsized is returned when a loop dimension has no field giving its extent.
	ErrUnsized = errors.New("operator: dimension extent unknown")

	// ErrNoInterior is returned when stencil halos leave no interior points.
	ErrNoInterior = errors.New("operator: no interior points")

	// ErrTimeRange is returned by Apply for a range outside [0, nt].
	ErrTimeRange = errors.New("operator: invalid time range")
)
