// SPDX-License-Identifier: MIT

// Package sensitivity builds the imaging-condition (gradient) and
// linearized-source expressions of full-waveform inversion and reverse-time
// migration.
//
// 🚀 What does it build?
//
//	Given a forward wavefield u, an adjoint wavefield v and a Model, an
//	imaging condition is the per-point, per-time-step contribution that
//	accumulates into the gradient with respect to squared slowness. The
//	linearized (Born) source is the forcing that propagates a model
//	perturbation dm through the linearized wave equation.
//
// ✨ Four imaging conditions, two sources:
//
//	                    isic=false   isic=true
//	  time domain       corr         isic
//	  frequency (DFT)   corr_freq    isic_freq
//
//	  source:           corr (Born)  isic
//
//	corr       −(dt/ρ)·v·∂²u/∂t²
//	isic       (dt/ρ)·(u·∂²v/∂t²·m + ∇u·∇v)
//	corr_freq  ((2πf)²/nt)·(ufr·cos ωt − ufi·sin ωt)·v
//	isic_freq  ((2πf)²/nt)·recon·v·m − (factor/nt)·∇recon·∇v
//
// The selection keys ("corr", "isic", "corr_freq", "isic_freq") are part of
// the external contract; Condition and SourceFormula are closed enums over
// fixed-size tables.
//
// ⚙️ Usage:
//
//	eqs, err := sensitivity.GradientUpdate(grad,
//		sensitivity.FrequencyDomain{Real: ufr, Imag: ufi},
//		sensitivity.TimeDomain{Field: v},
//		mod,
//		sensitivity.WithFrequencies(freqs),
//		sensitivity.WithDFTSubsampling(4),
//		sensitivity.WithISIC(true),
//	)
//
// Construction is pure: nothing here executes a kernel or mutates its
// inputs. The returned equations are run elsewhere (see package operator).
package sensitivity
