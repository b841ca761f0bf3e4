// SPDX-License-Identifier: MIT

package wavelet_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/wavelet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerators_InvalidInput returns nil instead of panicking.
func TestGenerators_InvalidInput(t *testing.T) {
	for name, gen := range map[string]func(int, float64, ...wavelet.Option) []float64{
		"ricker":   wavelet.Ricker,
		"sinusoid": wavelet.Sinusoid,
		"chirp":    wavelet.Chirp,
	} {
		assert.Nil(t, gen(0, 0.001), name)
		assert.Nil(t, gen(10, 0), name)
		assert.Nil(t, gen(10, math.NaN()), name)
		assert.Len(t, gen(10, 0.001), 10, name)
	}
}

// TestRicker_Peak checks the peak value, its position and symmetry.
func TestRicker_Peak(t *testing.T) {
	const dt = 0.001
	w := wavelet.Ricker(201, dt, wavelet.WithFrequency(10), wavelet.WithAmplitude(2))
	require.Len(t, w, 201)

	// default delay 1/f = 0.1 s, i.e. sample 100
	assert.InDelta(t, 2.0, w[100], 1e-12)
	for k := 1; k <= 100; k++ {
		assert.InDelta(t, w[100-k], w[100+k], 1e-12)
		assert.Less(t, w[100+k], w[100])
	}

	shifted := wavelet.Ricker(201, dt, wavelet.WithDelay(0.05))
	assert.InDelta(t, 1.0, shifted[50], 1e-12)
}

// TestSinusoid_Period checks one full period and the phase option.
func TestSinusoid_Period(t *testing.T) {
	w := wavelet.Sinusoid(9, 0.125, wavelet.WithFrequency(1))
	want := []float64{1, math.Sqrt2 / 2, 0, -math.Sqrt2 / 2, -1, -math.Sqrt2 / 2, 0, math.Sqrt2 / 2, 1}
	if diff := cmp.Diff(want, w, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("sinusoid mismatch (-want +got):\n%s", diff)
	}

	sin := wavelet.Sinusoid(4, 0.25, wavelet.WithFrequency(1), wavelet.WithPhase(-math.Pi/2))
	if diff := cmp.Diff([]float64{0, 1, 0, -1}, sin, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("phase mismatch (-want +got):\n%s", diff)
	}
}

// TestChirp_Constant degenerates to the sinusoid without a sweep.
func TestChirp_Constant(t *testing.T) {
	c := wavelet.Chirp(50, 0.01, wavelet.WithFrequency(3))
	s := wavelet.Sinusoid(50, 0.01, wavelet.WithFrequency(3))
	if diff := cmp.Diff(s, c, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("chirp without sweep (-sinusoid +chirp):\n%s", diff)
	}

	swept := wavelet.Chirp(50, 0.01, wavelet.WithFrequency(3), wavelet.WithSweep(20))
	assert.InDelta(t, 1.0, swept[0], 1e-12)
	assert.NotEqual(t, c[49], swept[49])
}

// TestNoise_Deterministic locks the noise stream to the seed.
func TestNoise_Deterministic(t *testing.T) {
	a := wavelet.Ricker(64, 0.001, wavelet.WithNoise(0.1), wavelet.WithSeed(7))
	b := wavelet.Ricker(64, 0.001, wavelet.WithNoise(0.1), wavelet.WithSeed(7))
	c := wavelet.Ricker(64, 0.001, wavelet.WithNoise(0.1), wavelet.WithSeed(8))
	clean := wavelet.Ricker(64, 0.001)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, clean)

	// a shared stream advances across calls
	r := rand.New(rand.NewSource(7))
	first := wavelet.Ricker(64, 0.001, wavelet.WithNoise(0.1), wavelet.WithRand(r))
	second := wavelet.Ricker(64, 0.001, wavelet.WithNoise(0.1), wavelet.WithRand(r))
	assert.Equal(t, a, first)
	assert.NotEqual(t, first, second)
}

// TestOptions_Panic covers option validation.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { wavelet.WithAmplitude(0) })
	assert.Panics(t, func() { wavelet.WithFrequency(-1) })
	assert.Panics(t, func() { wavelet.WithSweep(0) })
	assert.Panics(t, func() { wavelet.WithDelay(-0.1) })
	assert.Panics(t, func() { wavelet.WithNoise(-1) })
	assert.Panics(t, func() { wavelet.WithRand(nil) })
}

// TestFill writes trace times profile into a wavefield.
func TestFill(t *testing.T) {
	g, err := field.NewGrid([]int{3}, []float64{1}, field.WithTime(1, 2))
	require.NoError(t, err)
	u, err := field.NewTimeFunction("u", g)
	require.NoError(t, err)

	require.NoError(t, wavelet.Fill(u, []float64{1, -2}, 1, 2, 3))
	assert.Equal(t, []float64{1, 2, 3, -2, -4, -6}, u.Data().Values())

	require.NoError(t, wavelet.Fill(u, []float64{0.5, 4}))
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 4, 4, 4}, u.Data().Values())

	assert.ErrorIs(t, wavelet.Fill(u, []float64{1}), wavelet.ErrTraceLength)
	assert.ErrorIs(t, wavelet.Fill(u, []float64{1, 2}, 1, 2), wavelet.ErrProfileLength)

	static, err := field.NewFunction("s", g)
	require.NoError(t, err)
	assert.ErrorIs(t, wavelet.Fill(static, []float64{1, 2, 3}), wavelet.ErrNotTimeDependent)
}
