// Package seisgrad builds the sensitivity kernels of wave-equation seismic
// imaging: the imaging conditions that accumulate the full-waveform
// inversion (FWI) / reverse-time migration (RTM) gradient, and the
// linearized (Born) sources that propagate a model perturbation.
//
// 🚀 What is seisgrad?
//
//	A small symbolic toolkit that turns wavefields and a physical model into
//	update equations, ready for a finite-difference solver:
//		• Imaging conditions: corr, isic, corr_freq, isic_freq
//		• Linearized sources: Born (corr) and ISIC-consistent (isic)
//		• On-the-fly DFT accumulation with time subsampling
//		• A reference interpreter to check equations numerically
//
// Under the hood, everything is organized in subpackages:
//
//	symbolic/    — expression tree, dimensions, finite-difference derivatives
//	field/       — grids and discrete fields (leaves of expressions)
//	model/       — squared slowness m, perturbation dm, density rho, irho
//	dft/         — on-the-fly DFT accumulators and reconstruction
//	sensitivity/ — formula registry, imaging conditions, linearized sources
//	operator/    — reference interpreter for []symbolic.Eq
//	wavelet/     — deterministic source-time functions and test wavefields
//	config/      — YAML run description for the CLI
//
// Quick example (2-D, correlation imaging condition):
//
//	grad(x, y) = -dt*v(t, x, y)*Derivative(u(t, x, y), (t, 2))/rho(x, y) + grad(x, y)
//
//	go install github.com/katalvlaran/seisgrad/cmd/seisgrad@latest
package seisgrad
