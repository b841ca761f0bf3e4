package model

import "errors"

// Sentinel errors for model construction.
var (
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("model: grid is nil")

	// ErrNonPositive is returned when velocity or density values are <= 0 or non-finite.
	ErrNonPositive = errors.New("model: values must be positive and finite")

	// ErrNonFinite is returned when a perturbation value is NaN or ±Inf.
	ErrNonFinite = errors.New("model: NaN or Inf in perturbation")
)
