// SPDX-License-Identifier: MIT

package field_test

import (
	"testing"

	"github.com/katalvlaran/seisgrad/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewData_BadShape verifies that empty or non-positive shapes are rejected.
func TestNewData_BadShape(t *testing.T) {
	_, err := field.NewData()
	assert.ErrorIs(t, err, field.ErrBadShape)

	_, err = field.NewData(3, 0)
	assert.ErrorIs(t, err, field.ErrBadShape)
}

// TestData_RowMajor checks At/Set addressing and bounds reporting.
func TestData_RowMajor(t *testing.T) {
	d, err := field.NewData(2, 3)
	require.NoError(t, err)
	require.NoError(t, d.CopyFrom([]float64{0, 1, 2, 3, 4, 5}))

	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "row-major offset 1*3+2")

	require.NoError(t, d.Set(-1, 0, 1))
	assert.Equal(t, []float64{0, -1, 2, 3, 4, 5}, d.Values())

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
	_, err = d.At(0)
	assert.ErrorIs(t, err, field.ErrDimensionMismatch)
	assert.ErrorIs(t, d.CopyFrom([]float64{1, 2}), field.ErrDataLength)
}

// TestData_CloneIndependent ensures Clone does not alias the source buffer.
func TestData_CloneIndependent(t *testing.T) {
	d, err := field.NewData(4)
	require.NoError(t, err)
	require.NoError(t, d.CopyFrom([]float64{7}))

	c := d.Clone()
	d.Fill(0)
	assert.Equal(t, []float64{7, 7, 7, 7}, c.Values())
	assert.Equal(t, []int{4}, c.Shape())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 1, c.Rank())
}
