// SPDX-License-Identifier: MIT

package sensitivity

import (
	"github.com/katalvlaran/seisgrad/model"
	"github.com/katalvlaran/seisgrad/symbolic"
)

// sourceFormula builds one linearized source from validated inputs.
type sourceFormula func(mod *model.Model, u Wavefield) (Source, error)

// sourceFormulas is indexed by SourceFormula.
var sourceFormulas = [numSourceFormulas]sourceFormula{
	BornSource: bornSource,
	ISICSource: isicSource,
}

// LinearizedSource returns the forcing term of linearized modelling for the
// perturbation mod.DM(), Born or ISIC-consistent depending on isic.
func LinearizedSource(mod *model.Model, u Wavefield, isic bool) (Source, error) {
	return SelectSourceFormula(isic).Source(mod, u)
}

// Source builds the linearized source s.
//
// Errors: ErrUnknownSource, ErrNilModel, ErrNilWavefield, ErrShapeMismatch
// (ISIC source with a pair input, or a field off the model's grid).
func (s SourceFormula) Source(mod *model.Model, u Wavefield) (Source, error) {
	if !s.Valid() {
		return nil, keyErrorf(s, ErrUnknownSource, "")
	}
	if mod == nil {
		return nil, keyErrorf(s, ErrNilModel, "")
	}
	if err := checkWavefield(u); err != nil {
		return nil, keyErrorf(s, err, "forward wavefield")
	}
	for _, f := range fields(u) {
		if err := onModelGrid(f, mod); err != nil {
			return nil, keyErrorf(s, ErrShapeMismatch, "%v", err)
		}
	}

	return sourceFormulas[s](mod, u)
}

// bornSource: w·∂²u/∂t², w = −dm·irho, applied to each component of a pair.
func bornSource(mod *model.Model, u Wavefield) (Source, error) {
	w := symbolic.Neg(symbolic.Mul(mod.DM(), mod.IRho()))
	time := mod.TimeDim()

	switch f := u.(type) {
	case TimeDomain:
		return SourceExpr{Expr: symbolic.Mul(w, f.Field.Dt2(time))}, nil
	case FrequencyDomain:
		return SourcePair{
			Real: symbolic.Mul(w, f.Real.Dt2(time)),
			Imag: symbolic.Mul(w, f.Imag.Dt2(time)),
		}, nil
	}

	return nil, keyErrorf(BornSource, ErrShapeMismatch, "%T", u)
}

// isicSource: dm·irho·∂²u/∂t²·m − Σ_d ∂_d(∂_d u·dm·irho).
func isicSource(mod *model.Model, u Wavefield) (Source, error) {
	td, ok := u.(TimeDomain)
	if !ok {
		return nil, keyErrorf(ISICSource, ErrShapeMismatch, "forward wavefield must be TimeDomain, got %T", u)
	}
	uf := td.Field

	return SourceExpr{Expr: symbolic.Sub(
		symbolic.Mul(mod.DM(), mod.IRho(), uf.Dt2(mod.TimeDim()), mod.M()),
		isicAuxiliary(uf, mod, mod.SpaceDimensions()),
	)}, nil
}

// isicAuxiliary is Σ_d ∂_d(∂_d u·dm·irho) over dims, both derivatives at
// half the space order carried by irho.
func isicAuxiliary(u symbolic.Expr, mod *model.Model, dims []*symbolic.Dimension) symbolic.Expr {
	so := max(mod.IRho().SpaceOrder()/2, 1)
	terms := make([]symbolic.Expr, len(dims))
	for i, d := range dims {
		inner := symbolic.Mul(symbolic.Diff(u, d, 1, so), mod.DM(), mod.IRho())
		terms[i] = symbolic.Diff(inner, d, 1, so)
	}

	return symbolic.Add(terms...)
}
