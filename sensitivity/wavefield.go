// SPDX-License-Identifier: MIT

package sensitivity

import (
	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/symbolic"
)

// Wavefield is either TimeDomain or FrequencyDomain. The set is closed:
// only this package implements it.
type Wavefield interface {
	isWavefield()
}

// TimeDomain is a single space-time field u(t, x, ...).
type TimeDomain struct {
	Field *field.Function
}

// FrequencyDomain is a pair of DFT accumulators over (freq_dim, x, ...).
// For linearized sources the pair may also hold two time-domain components
// transformed independently.
type FrequencyDomain struct {
	Real *field.Function
	Imag *field.Function
}

func (TimeDomain) isWavefield()      {}
func (FrequencyDomain) isWavefield() {}

// Source is the output of a linearized-source formula: SourceExpr for a
// single field, SourcePair for a pair input.
type Source interface {
	isSource()
}

// SourceExpr is a single source expression.
type SourceExpr struct {
	Expr symbolic.Expr
}

// SourcePair holds the independently transformed components of a pair input.
type SourcePair struct {
	Real symbolic.Expr
	Imag symbolic.Expr
}

func (SourceExpr) isSource() {}
func (SourcePair) isSource() {}

// checkWavefield returns ErrNilWavefield for nil interfaces or nil parts.
func checkWavefield(w Wavefield) error {
	switch v := w.(type) {
	case TimeDomain:
		if v.Field == nil {
			return ErrNilWavefield
		}
	case FrequencyDomain:
		if v.Real == nil || v.Imag == nil {
			return ErrNilWavefield
		}
	default:
		return ErrNilWavefield
	}

	return nil
}

// fields returns the non-nil component fields of w.
func fields(w Wavefield) []*field.Function {
	switch v := w.(type) {
	case TimeDomain:
		return []*field.Function{v.Field}
	case FrequencyDomain:
		return []*field.Function{v.Real, v.Imag}
	}

	return nil
}
