// SPDX-License-Identifier: MIT

package sensitivity

import (
	"github.com/katalvlaran/seisgrad/dft"
	"github.com/katalvlaran/seisgrad/model"
	"github.com/katalvlaran/seisgrad/symbolic"
)

// imagingFormula builds one imaging condition from validated inputs.
type imagingFormula func(u, v Wavefield, mod *model.Model, o Options) (symbolic.Expr, error)

// imagingFormulas is indexed by Condition.
var imagingFormulas = [numConditions]imagingFormula{
	Corr:     correlation,
	ISIC:     inverseScattering,
	CorrFreq: correlationDFT,
	ISICFreq: inverseScatteringDFT,
}

// correlation: −w·v·∂²u/∂t², w = dt/rho unless overridden.
func correlation(u, v Wavefield, mod *model.Model, o Options) (symbolic.Expr, error) {
	uf, vf := u.(TimeDomain).Field, v.(TimeDomain).Field
	w := o.weight
	if w == nil {
		w = symbolic.Div(mod.DT(), mod.Rho())
	}

	return symbolic.Neg(symbolic.Mul(w, vf, uf.Dt2(mod.TimeDim()))), nil
}

// inverseScattering: w·(u·∂²v/∂t²·m + ∇u·∇v), w = dt/rho.
func inverseScattering(u, v Wavefield, mod *model.Model, _ Options) (symbolic.Expr, error) {
	uf, vf := u.(TimeDomain).Field, v.(TimeDomain).Field
	w := symbolic.Div(mod.DT(), mod.Rho())

	return symbolic.Mul(w, symbolic.Add(
		symbolic.Mul(uf, vf.Dt2(mod.TimeDim()), mod.M()),
		gradDot(uf, vf, mod),
	)), nil
}

// gradDot is ∇a·∇b over the model's spatial axes at the model space order.
func gradDot(a, b symbolic.Expr, mod *model.Model) symbolic.Expr {
	dims, so := mod.SpaceDimensions(), mod.SpaceOrder()

	return symbolic.Dot(symbolic.Grad(a, dims, so), symbolic.Grad(b, dims, so))
}

// dftTerms are the pieces shared by both frequency-domain conditions.
type dftTerms struct {
	recon  symbolic.Expr // ufr·cos(ωt) − ufi·sin(ωt)
	weight symbolic.Expr // (2πf)²/nt
	factor int           // DFT stride
}

// reconstruct builds the DFT reconstruction of the forward field and its
// (2πf)²/nt normalisation.
func reconstruct(fd FrequencyDomain, mod *model.Model, o Options) (dftTerms, error) {
	tsave, factor := dft.SubTime(mod.TimeDim(), o.dftSub)
	f, err := dft.Coefficients(fd.Real.Dimensions()[0], o.freq)
	if err != nil {
		return dftTerms{}, err
	}
	omegaT := dft.Phase(f, tsave, factor, mod.DT())

	return dftTerms{
		recon:  dft.Reconstruct(fd.Real, fd.Imag, omegaT),
		weight: symbolic.Div(symbolic.Pow(symbolic.Mul(symbolic.Num(2), symbolic.Pi, f), 2), mod.NT()),
		factor: factor,
	}, nil
}

// correlationDFT: ((2πf)²/nt)·recon·v.
func correlationDFT(u, v Wavefield, mod *model.Model, o Options) (symbolic.Expr, error) {
	terms, err := reconstruct(u.(FrequencyDomain), mod, o)
	if err != nil {
		return nil, err
	}

	return symbolic.Mul(terms.weight, terms.recon, v.(TimeDomain).Field), nil
}

// inverseScatteringDFT: ((2πf)²/nt)·recon·v·m − (factor/nt)·∇recon·∇v.
// The correction term is not a second time derivative, so it is scaled by
// the stride rather than by (2πf)².
func inverseScatteringDFT(u, v Wavefield, mod *model.Model, o Options) (symbolic.Expr, error) {
	terms, err := reconstruct(u.(FrequencyDomain), mod, o)
	if err != nil {
		return nil, err
	}
	vf := v.(TimeDomain).Field

	return symbolic.Sub(
		symbolic.Mul(terms.weight, terms.recon, vf, mod.M()),
		symbolic.Mul(
			symbolic.Div(symbolic.Num(float64(terms.factor)), mod.NT()),
			gradDot(terms.recon, vf, mod),
		),
	), nil
}
