// SPDX-License-Identifier: MIT

package field_test

import (
	"testing"

	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T) *field.Grid {
	t.Helper()
	g, err := field.NewGrid([]int{4, 3}, []float64{10, 5}, field.WithTime(0.5, 6))
	require.NoError(t, err)

	return g
}

// TestNewGrid_Validation covers rank, spacing and extent checks.
func TestNewGrid_Validation(t *testing.T) {
	_, err := field.NewGrid(nil, nil)
	assert.ErrorIs(t, err, field.ErrBadShape)

	_, err = field.NewGrid([]int{1, 1, 1, 1}, []float64{1, 1, 1, 1})
	assert.ErrorIs(t, err, field.ErrBadShape)

	_, err = field.NewGrid([]int{3}, []float64{1, 1})
	assert.ErrorIs(t, err, field.ErrDimensionMismatch)

	_, err = field.NewGrid([]int{3}, []float64{-1})
	assert.ErrorIs(t, err, field.ErrBadSpacing)

	assert.Panics(t, func() { field.WithTime(0, 10) })
}

// TestGrid_Accessors verifies dimension naming and time symbols.
func TestGrid_Accessors(t *testing.T) {
	g := newGrid(t)

	dims := g.Dimensions()
	require.Len(t, dims, 2)
	assert.Equal(t, "x", dims[0].Name())
	assert.Equal(t, "h_y", dims[1].Spacing().String())
	assert.Equal(t, "t", g.TimeDim().Name())
	assert.Equal(t, "dt", g.TimeDim().Spacing().String())
	assert.Equal(t, "nt", g.TimeDim().SymbolicMax().String())
	assert.Equal(t, 6, g.NT())
	assert.Equal(t, 0.5, g.DT())
	assert.Equal(t, 12, g.Size())
	assert.Equal(t, 2, g.NDim())
}

// TestTimeFunction_EvalAndStore checks rendering, evaluation and writes.
func TestTimeFunction_EvalAndStore(t *testing.T) {
	g := newGrid(t)
	u, err := field.NewTimeFunction("u", g, field.WithSpaceOrder(4))
	require.NoError(t, err)

	assert.Equal(t, "u(t, x, y)", u.String())
	assert.Equal(t, []int{6, 4, 3}, u.Shape())
	assert.True(t, u.IsTimeDependent())
	assert.Equal(t, 4, u.SpaceOrder())
	assert.Len(t, u.SpaceDimensions(), 2)

	x, y := g.Dimensions()[0], g.Dimensions()[1]
	env := symbolic.NewEnv().Bind(g.TimeDim(), 2).Bind(x, 1).Bind(y, 2)
	require.NoError(t, u.Store(env, 3.5))

	v, err := u.Eval(env)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = u.Eval(symbolic.NewEnv().Bind(x, 1).Bind(y, 2))
	assert.ErrorIs(t, err, symbolic.ErrUnboundIndex)

	_, err = u.Eval(env.Bind(x, 4))
	assert.ErrorIs(t, err, field.ErrOutOfRange)
}

// TestFunction_Dt2 verifies the second time derivative on a quadratic history.
func TestFunction_Dt2(t *testing.T) {
	g := newGrid(t)
	u, err := field.NewTimeFunction("u", g)
	require.NoError(t, err)

	x, y := g.Dimensions()[0], g.Dimensions()[1]
	for it := 0; it < g.NT(); it++ {
		tt := float64(it) * g.DT()
		env := symbolic.NewEnv().Bind(g.TimeDim(), it).Bind(x, 0).Bind(y, 0)
		require.NoError(t, u.Store(env, 3*tt*tt))
	}

	env := symbolic.NewEnv().Bind(g.TimeDim(), 3).Bind(x, 0).Bind(y, 0)
	v, err := u.Dt2(g.TimeDim()).Eval(env)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, v, 1e-12)
	assert.Equal(t, "Derivative(u(t, x, y), (t, 2))", u.Dt2(g.TimeDim()).String())
}

// TestNewIndexed covers coefficient fields and literal data.
func TestNewIndexed(t *testing.T) {
	freq := symbolic.NewIndexDimension("freq_dim")
	f, err := field.NewIndexed("f", freq, []float64{3, 5})
	require.NoError(t, err)
	assert.Equal(t, "f(freq_dim)", f.String())
	assert.False(t, f.IsTimeDependent())
	assert.Empty(t, f.SpaceDimensions())

	v, err := f.Eval(symbolic.NewEnv().Bind(freq, 1))
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	_, err = field.NewIndexed("f", freq, nil)
	assert.ErrorIs(t, err, field.ErrBadShape)

	g := newGrid(t)
	_, err = field.NewFunction("m", g, field.WithValues(1, 2))
	assert.ErrorIs(t, err, field.ErrDataLength)

	_, err = field.NewFunctionOn("bad", []*symbolic.Dimension{freq}, []int{1, 2})
	assert.ErrorIs(t, err, field.ErrDimensionMismatch)
}
