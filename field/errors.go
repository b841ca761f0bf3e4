// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
)

// Sentinel errors for the field package. Check with errors.Is.
var (
	// ErrBadShape is returned when a shape is empty or has a non-positive extent.
	ErrBadShape = errors.New("field: invalid shape")

	// ErrBadSpacing is returned when a grid spacing is non-positive or non-finite.
	ErrBadSpacing = errors.New("field: invalid spacing")

	// ErrOutOfRange indicates an index outside the buffer extents.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrDimensionMismatch indicates an index tuple or dimension list whose
	// length differs from the shape rank.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")

	// ErrDataLength is returned when literal data does not match the buffer size.
	ErrDataLength = errors.New("field: data length mismatch")
)

// fieldErrorf wraps err with the operation and field name.
func fieldErrorf(op, name string, err error) error {
	return fmt.Errorf("%s(%s): %w", op, name, err)
}
