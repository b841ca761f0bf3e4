package dft

import "errors"

// Sentinel errors for the dft package.
var (
	// ErrNoFrequencies is returned for an empty frequency list.
	ErrNoFrequencies = errors.New("dft: empty frequency list")

	// ErrInvalidFrequency is returned for NaN or ±Inf frequencies.
	ErrInvalidFrequency = errors.New("dft: NaN or Inf frequency")

	// ErrShapeMismatch is returned when accumulators and frequencies disagree
	// (frequency extent, time dependence, dimension lists).
	ErrShapeMismatch = errors.New("dft: accumulator shape mismatch")
)
