// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
)

// Data is a row-major N-d buffer of float64 values.
// shape holds the extents, strides the row-major step per axis and data
// the flat backing storage of length Π shape.
type Data struct {
	shape   []int
	strides []int
	data    []float64
}

// NewData allocates a zero-filled buffer.
// Stage 1 (Validate): at least one axis, every extent > 0.
// Stage 2 (Prepare): compute row-major strides.
// Stage 3 (Finalize): allocate the flat slice.
// Complexity: O(Π shape) time and memory.
func NewData(shape ...int) (*Data, error) {
	if len(shape) == 0 {
		return nil, ErrBadShape
	}
	size := 1
	for _, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("extent %d: %w", n, ErrBadShape)
		}
		size *= n
	}

	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}

	return &Data{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    make([]float64, size),
	}, nil
}

// Shape returns a copy of the extents.
func (d *Data) Shape() []int { return append([]int(nil), d.shape...) }

// Rank returns the number of axes.
func (d *Data) Rank() int { return len(d.shape) }

// Len returns the number of elements.
func (d *Data) Len() int { return len(d.data) }

// offset validates idx and returns the flat position.
func (d *Data) offset(idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, fmt.Errorf("rank %d, got %d indices: %w", len(d.shape), len(idx), ErrDimensionMismatch)
	}
	off := 0
	for a, i := range idx {
		if i < 0 || i >= d.shape[a] {
			return 0, fmt.Errorf("axis %d index %d of %d: %w", a, i, d.shape[a], ErrOutOfRange)
		}
		off += i * d.strides[a]
	}

	return off, nil
}

// At returns the element at idx.
// Complexity: O(rank).
func (d *Data) At(idx ...int) (float64, error) {
	off, err := d.offset(idx)
	if err != nil {
		return 0, err
	}

	return d.data[off], nil
}

// Set writes v at idx.
// Complexity: O(rank).
func (d *Data) Set(v float64, idx ...int) error {
	off, err := d.offset(idx)
	if err != nil {
		return err
	}
	d.data[off] = v

	return nil
}

// Fill sets every element to v.
func (d *Data) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// CopyFrom loads values in row-major order. A single value broadcasts.
func (d *Data) CopyFrom(values []float64) error {
	switch len(values) {
	case 1:
		d.Fill(values[0])
		return nil
	case len(d.data):
		copy(d.data, values)
		return nil
	}

	return fmt.Errorf("want %d (or 1) values, got %d: %w", len(d.data), len(values), ErrDataLength)
}

// Values returns the backing slice. It aliases the buffer: writes are visible.
func (d *Data) Values() []float64 { return d.data }

// Clone returns a deep copy.
func (d *Data) Clone() *Data {
	return &Data{
		shape:   append([]int(nil), d.shape...),
		strides: append([]int(nil), d.strides...),
		data:    append([]float64(nil), d.data...),
	}
}
