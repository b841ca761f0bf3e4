// SPDX-License-Identifier: MIT
//
// generators.go - Ricker, sinusoid and linear chirp.
//
// Model (sample i at time tᵢ = i·dt):
//   - Ricker:   A·(1 − 2a)·exp(−a),  a = (π·f·(tᵢ − t0))², t0 = 1/f by default
//   - Sinusoid: A·cos(2π·f·tᵢ + φ)
//   - Chirp:    A·cos(θᵢ), θᵢ₊₁ = θᵢ + 2π·fᵢ·dt, fᵢ sweeping f0 → f1 linearly
//
// Each then adds sigma·N(0,1) when noise is enabled.

package wavelet

import "math"

const tau = 2.0 * math.Pi

// Ricker returns the Ricker (Mexican hat) wavelet sampled at nt steps of dt.
func Ricker(nt int, dt float64, opts ...Option) []float64 {
	if nt < 1 || !(dt > 0) {
		return nil
	}
	c := newConfig(opts...)
	t0 := c.delay
	if t0 < 0 {
		t0 = 1 / c.freq
	}

	out := make([]float64, nt)
	for i := range out {
		r := math.Pi * c.freq * (float64(i)*dt - t0)
		a := r * r
		out[i] = c.amp * (1 - 2*a) * math.Exp(-a)
	}
	addNoise(out, c)

	return out
}

// Sinusoid returns A·cos(2πf·t + φ) sampled at nt steps of dt.
func Sinusoid(nt int, dt float64, opts ...Option) []float64 {
	if nt < 1 || !(dt > 0) {
		return nil
	}
	c := newConfig(opts...)

	out := make([]float64, nt)
	for i := range out {
		out[i] = c.amp * math.Cos(tau*c.freq*float64(i)*dt+c.phase)
	}
	addNoise(out, c)

	return out
}

// Chirp returns a linear frequency sweep from WithFrequency to WithSweep.
// Without WithSweep it degenerates to Sinusoid up to phase integration.
func Chirp(nt int, dt float64, opts ...Option) []float64 {
	if nt < 1 || !(dt > 0) {
		return nil
	}
	c := newConfig(opts...)
	f1 := c.freqEnd
	if f1 == 0 {
		f1 = c.freq
	}

	out := make([]float64, nt)
	theta := c.phase
	for i := range out {
		out[i] = c.amp * math.Cos(theta)
		s := 0.0
		if nt > 1 {
			s = float64(i) / float64(nt-1)
		}
		theta += tau * (c.freq + (f1-c.freq)*s) * dt
	}
	addNoise(out, c)

	return out
}

func addNoise(out []float64, c config) {
	if c.sigma == 0 {
		return
	}
	rng := rngFrom(c)
	for i := range out {
		out[i] += c.sigma * rng.NormFloat64()
	}
}
