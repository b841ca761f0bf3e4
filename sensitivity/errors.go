// SPDX-License-Identifier: MIT

package sensitivity

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced by validate, covered in tests):
// nil model/wavefields -> frequency configuration -> wavefield shape.
// Everything is checked before any coefficient field is created.
var (
	// ErrNilModel is returned when the Model argument is nil.
	ErrNilModel = errors.New("sensitivity: model is nil")

	// ErrNilWavefield is returned when a wavefield (or one of its parts) is nil.
	ErrNilWavefield = errors.New("sensitivity: wavefield is nil")

	// ErrNilGradient is returned when GradientUpdate receives a nil gradient field.
	ErrNilGradient = errors.New("sensitivity: gradient field is nil")

	// ErrNoFrequencies is returned when a frequency-domain condition is
	// requested without WithFrequencies.
	ErrNoFrequencies = errors.New("sensitivity: frequency-domain condition needs frequencies")

	// ErrEmptyFrequencies is returned when WithFrequencies received zero values.
	ErrEmptyFrequencies = errors.New("sensitivity: frequency list is empty")

	// ErrInvalidFrequency is returned for NaN or ±Inf frequencies.
	ErrInvalidFrequency = errors.New("sensitivity: NaN or Inf frequency")

	// ErrShapeMismatch is returned when a wavefield variant (or the extent of
	// its frequency axis) does not fit the selected formula.
	ErrShapeMismatch = errors.New("sensitivity: wavefield shape does not match formula")

	// ErrUnknownCondition is returned for a Condition outside the closed set.
	ErrUnknownCondition = errors.New("sensitivity: unknown imaging condition")

	// ErrUnknownSource is returned for a SourceFormula outside the closed set.
	ErrUnknownSource = errors.New("sensitivity: unknown linearized source")
)

// keyErrorf attaches the formula key to a sentinel.
func keyErrorf(key fmt.Stringer, err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%s: %w", key, err)
	}

	return fmt.Errorf("%s: %s: %w", key, fmt.Sprintf(format, args...), err)
}
