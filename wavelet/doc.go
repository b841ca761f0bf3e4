// SPDX-License-Identifier: MIT

// Package wavelet generates deterministic source-time functions and test
// wavefields: a Ricker wavelet, a monochromatic sinusoid and a linear chirp,
// each with optional additive Gaussian noise.
//
// Contract:
//   - Generators return a slice of length nt, or nil on invalid input
//     (nt < 1, dt <= 0). They never panic.
//   - Option constructors validate and panic on meaningless values.
//   - Noise is reproducible: WithSeed / WithRand select the stream.
//
// Fill writes a trace times a spatial profile into a time-dependent field,
// which is how tests and the CLI build monochromatic wavefields.
package wavelet
