package dft_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/seisgrad/dft"
	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/operator"
	"github.com/katalvlaran/seisgrad/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	nx = 2
	nt = 8
	dt = 0.5
)

func setup(t *testing.T, nfreq int) (*field.Grid, *field.Function, *field.Function, *field.Function) {
	t.Helper()
	g, err := field.NewGrid([]int{nx}, []float64{1}, field.WithTime(dt, nt))
	require.NoError(t, err)

	values := make([]float64, nt*nx)
	for ti := 0; ti < nt; ti++ {
		for xi := 0; xi < nx; xi++ {
			values[ti*nx+xi] = math.Sin(0.7*float64(ti)) + float64(xi+1)
		}
	}
	u, err := field.NewTimeFunction("u", g, field.WithValues(values...))
	require.NoError(t, err)
	ufr, ufi, err := dft.Accumulators(g, nfreq)
	require.NoError(t, err)

	return g, u, ufr, ufi
}

// TestSubTime checks the identity and the conditional branch.
func TestSubTime(t *testing.T) {
	time := symbolic.NewTimeDimension("t", symbolic.NewScalar("dt", 1), symbolic.NewScalar("nt", 4))

	d, f := dft.SubTime(time, 1)
	assert.Same(t, time, d)
	assert.Equal(t, 1, f)

	d, f = dft.SubTime(time, 0)
	assert.Same(t, time, d)
	assert.Equal(t, 1, f)

	d, f = dft.SubTime(time, 3)
	assert.Equal(t, "tsave", d.Name())
	assert.True(t, d.IsConditional())
	assert.Same(t, time, d.Parent())
	assert.Equal(t, 3, f)
}

// TestValidateFrequencies covers empty and non-finite input.
func TestValidateFrequencies(t *testing.T) {
	assert.NoError(t, dft.ValidateFrequencies([]float64{0, -1.5, 10}))
	assert.ErrorIs(t, dft.ValidateFrequencies(nil), dft.ErrNoFrequencies)
	assert.ErrorIs(t, dft.ValidateFrequencies([]float64{1, math.NaN()}), dft.ErrInvalidFrequency)
	assert.ErrorIs(t, dft.ValidateFrequencies([]float64{math.Inf(1)}), dft.ErrInvalidFrequency)
}

// TestAccumulators checks naming, layout and pair validation.
func TestAccumulators(t *testing.T) {
	g, u, ufr, ufi := setup(t, 3)

	assert.Equal(t, "ufr(freq_dim, x)", ufr.String())
	assert.Equal(t, "ufi(freq_dim, x)", ufi.String())
	assert.Equal(t, []int{3, nx}, ufr.Shape())
	assert.Equal(t, symbolic.IndexDimension, ufr.Dimensions()[0].Kind())
	assert.NoError(t, dft.CheckAccumulators(ufr, ufi, []float64{1, 2, 3}))

	_, _, err := dft.Accumulators(g, 0)
	assert.ErrorIs(t, err, dft.ErrNoFrequencies)

	assert.ErrorIs(t, dft.CheckAccumulators(ufr, ufi, []float64{1, 2}), dft.ErrShapeMismatch)
	assert.ErrorIs(t, dft.CheckAccumulators(u, ufi, []float64{1, 2, 3}), dft.ErrShapeMismatch)

	other, _, err := dft.Accumulators(g, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, dft.CheckAccumulators(ufr, other, []float64{1, 2, 3}), dft.ErrShapeMismatch)

	static, err := field.NewFunction("s", g)
	require.NoError(t, err)
	assert.ErrorIs(t, dft.CheckAccumulators(static, static, []float64{1}), dft.ErrShapeMismatch)
}

// TestUpdate_Render pins the printed accumulation equations.
func TestUpdate_Render(t *testing.T) {
	_, u, ufr, ufi := setup(t, 2)

	eqs, err := dft.Update(u, ufr, ufi, []float64{1, 2}, 1)
	require.NoError(t, err)
	require.Len(t, eqs, 2)
	assert.Equal(t, "ufr(freq_dim, x) = ufr(freq_dim, x) + u(t, x)*cos(2*pi*f(freq_dim)*t*dt)", eqs[0].String())
	assert.Equal(t, "ufi(freq_dim, x) = ufi(freq_dim, x) - u(t, x)*sin(2*pi*f(freq_dim)*t*dt)", eqs[1].String())
	assert.Nil(t, eqs[0].Guard)

	eqs, err = dft.Update(u, ufr, ufi, []float64{1, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, "ufr(freq_dim, x) = ufr(freq_dim, x) + 2*u(t, x)*cos(4*pi*f(freq_dim)*tsave*dt)", eqs[0].String())
	require.NotNil(t, eqs[1].Guard)
	assert.Equal(t, "tsave", eqs[1].Guard.Name())
}

// TestUpdate_Errors covers argument validation.
func TestUpdate_Errors(t *testing.T) {
	g, u, ufr, ufi := setup(t, 2)
	static, err := field.NewFunction("s", g)
	require.NoError(t, err)

	_, err = dft.Update(static, ufr, ufi, []float64{1, 2}, 1)
	assert.ErrorIs(t, err, dft.ErrShapeMismatch)
	_, err = dft.Update(u, ufr, ufi, nil, 1)
	assert.ErrorIs(t, err, dft.ErrNoFrequencies)
	_, err = dft.Update(u, ufr, ufi, []float64{1, math.NaN()}, 1)
	assert.ErrorIs(t, err, dft.ErrInvalidFrequency)
	_, err = dft.Update(u, ufr, ufi, []float64{1, 2, 3}, 1)
	assert.ErrorIs(t, err, dft.ErrShapeMismatch)
}

// TestUpdate_Accumulates runs the equations and compares with a direct DFT.
func TestUpdate_Accumulates(t *testing.T) {
	freq := []float64{0, 0.25, 0.4}

	for _, factor := range []int{1, 2, 3} {
		_, u, ufr, ufi := setup(t, len(freq))
		eqs, err := dft.Update(u, ufr, ufi, freq, factor)
		require.NoError(t, err)
		op, err := operator.New(eqs)
		require.NoError(t, err)
		_, err = op.Apply(context.Background(), 0, nt)
		require.NoError(t, err)

		wantR := make([]float64, len(freq)*nx)
		wantI := make([]float64, len(freq)*nx)
		for k, f := range freq {
			for ti := 0; ti < nt; ti += factor {
				w := 2 * math.Pi * f * float64(ti) * dt
				for xi := 0; xi < nx; xi++ {
					v, err := u.Data().At(ti, xi)
					require.NoError(t, err)
					wantR[k*nx+xi] += float64(factor) * v * math.Cos(w)
					wantI[k*nx+xi] -= float64(factor) * v * math.Sin(w)
				}
			}
		}

		opt := cmpopts.EquateApprox(0, 1e-9)
		if diff := cmp.Diff(wantR, ufr.Data().Values(), opt); diff != "" {
			t.Errorf("factor %d: ufr mismatch (-want +got):\n%s", factor, diff)
		}
		if diff := cmp.Diff(wantI, ufi.Data().Values(), opt); diff != "" {
			t.Errorf("factor %d: ufi mismatch (-want +got):\n%s", factor, diff)
		}
	}
}

// TestReconstruct evaluates the inverse phase rotation.
func TestReconstruct(t *testing.T) {
	expr := dft.Reconstruct(symbolic.Num(2), symbolic.Num(3), symbolic.Num(math.Pi/2))
	v, err := expr.Eval(symbolic.NewEnv())
	require.NoError(t, err)
	assert.InDelta(t, -3.0, v, 1e-12)
}
