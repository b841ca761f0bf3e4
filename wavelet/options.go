// SPDX-License-Identifier: MIT
//
// options.go - functional options for the generators.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   - Determinism is explicit: noise is drawn from WithRand, else from a
//     source seeded by WithSeed (DefaultSeed when absent).

package wavelet

import "math/rand"

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultAmplitude scales every generator.
	DefaultAmplitude = 1.0

	// DefaultPeakFrequency is the Ricker peak / sinusoid frequency in Hz.
	DefaultPeakFrequency = 10.0

	// DefaultSigma disables noise.
	DefaultSigma = 0.0

	// DefaultSeed seeds the noise stream when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
)

// Option customizes a generator.
type Option func(*config)

type config struct {
	amp     float64
	freq    float64
	freqEnd float64 // chirp only; 0 means "same as freq"
	delay   float64 // seconds; negative means "generator default"
	phase   float64 // radians, sinusoid and chirp
	sigma   float64
	seed    int64
	rng     *rand.Rand
}

func newConfig(opts ...Option) config {
	c := config{
		amp:   DefaultAmplitude,
		freq:  DefaultPeakFrequency,
		delay: -1,
		sigma: DefaultSigma,
		seed:  DefaultSeed,
	}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithAmplitude sets the peak amplitude. Panics unless a > 0.
func WithAmplitude(a float64) Option {
	if !(a > 0) {
		panic("wavelet: WithAmplitude: amplitude must be > 0")
	}

	return func(c *config) { c.amp = a }
}

// WithFrequency sets the peak (Ricker) or carrier (sinusoid) frequency, and
// the start frequency of a chirp, in Hz. Panics unless f > 0.
func WithFrequency(f float64) Option {
	if !(f > 0) {
		panic("wavelet: WithFrequency: frequency must be > 0")
	}

	return func(c *config) { c.freq = f }
}

// WithSweep sets the end frequency of a chirp in Hz. Panics unless f > 0.
func WithSweep(f float64) Option {
	if !(f > 0) {
		panic("wavelet: WithSweep: frequency must be > 0")
	}

	return func(c *config) { c.freqEnd = f }
}

// WithDelay shifts the Ricker peak to t0 seconds. Panics on t0 < 0.
func WithDelay(t0 float64) Option {
	if t0 < 0 {
		panic("wavelet: WithDelay: delay must be >= 0")
	}

	return func(c *config) { c.delay = t0 }
}

// WithPhase sets the initial phase in radians of the sinusoid and chirp.
func WithPhase(phi float64) Option {
	return func(c *config) { c.phase = phi }
}

// WithNoise adds Gaussian noise with standard deviation sigma. Panics on sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("wavelet: WithNoise: sigma must be >= 0")
	}

	return func(c *config) { c.sigma = sigma }
}

// WithSeed seeds the noise stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand shares an explicit noise stream across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("wavelet: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// rngFrom returns the shared stream if present, else a local one.
func rngFrom(c config) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(c.seed))
}
