// Package dft holds the time-subsampling and on-the-fly discrete Fourier
// transform helpers that frequency-domain imaging conditions build on.
//
// 🚀 What is an on-the-fly DFT?
//
//	Instead of storing u(t, x) for every t, a forward run accumulates, for a
//	handful of frequencies f_k,
//
//	  ufr[k, x] += factor · u(t, x) · cos(2π f_k t dt)
//	  ufi[k, x] -= factor · u(t, x) · sin(2π f_k t dt)
//
//	every factor-th step. The field at any t is then recovered as
//
//	  recon(t, x) = ufr·cos(ωt) − ufi·sin(ωt)
//
//	summed over k (with the appropriate normalisation).
//
// ⚙️ Pieces:
//   - SubTime: subsampled time index (tsave = t/factor) and its stride
//   - Accumulators: the (ufr, ufi) pair over (freq_dim, x, y, …)
//   - Coefficients: the indexed frequency field f(freq_dim)
//   - Phase: ωt = 2π·f·tsave·factor·dt
//   - Reconstruct: ufr·cos(ωt) − ufi·sin(ωt)
//   - Update: the guarded accumulation equations
package dft
