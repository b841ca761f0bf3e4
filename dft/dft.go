package dft

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/symbolic"
)

// FrequencyDimName names the frequency index axis of DFT accumulators.
const FrequencyDimName = "freq_dim"

// SubTime returns the subsampled time index and its stride. factor <= 1
// means no subsampling: the time dimension itself with stride 1. Otherwise
// a conditional dimension "tsave" with tsave = t/factor.
func SubTime(time *symbolic.Dimension, factor int) (*symbolic.Dimension, int) {
	if factor <= 1 {
		return time, 1
	}

	return symbolic.NewConditionalDimension("tsave", time, factor), factor
}

// ValidateFrequencies checks a frequency list: non-empty and finite.
func ValidateFrequencies(freq []float64) error {
	if len(freq) == 0 {
		return ErrNoFrequencies
	}
	for i, f := range freq {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("freq[%d]=%g: %w", i, f, ErrInvalidFrequency)
		}
	}

	return nil
}

// Accumulators returns the (ufr, ufi) pair over (freq_dim, x, ...) for
// nfreq frequencies, zero-initialised.
func Accumulators(g *field.Grid, nfreq int, opts ...field.FunctionOption) (ufr, ufi *field.Function, err error) {
	if nfreq < 1 {
		return nil, nil, ErrNoFrequencies
	}
	freqDim := symbolic.NewIndexDimension(FrequencyDimName)
	dims := append([]*symbolic.Dimension{freqDim}, g.Dimensions()...)
	shape := append([]int{nfreq}, g.Shape()...)

	if ufr, err = field.NewFunctionOn("ufr", dims, shape, opts...); err != nil {
		return nil, nil, err
	}
	if ufi, err = field.NewFunctionOn("ufi", dims, shape, opts...); err != nil {
		return nil, nil, err
	}

	return ufr, ufi, nil
}

// CheckAccumulators verifies that (ufr, ufi) is a valid accumulator pair
// for freq: same dimensions, static, leading index axis of extent len(freq).
func CheckAccumulators(ufr, ufi *field.Function, freq []float64) error {
	if ufr.IsTimeDependent() || ufi.IsTimeDependent() {
		return fmt.Errorf("accumulators must be static: %w", ErrShapeMismatch)
	}
	rd, id := ufr.Dimensions(), ufi.Dimensions()
	if len(rd) != len(id) {
		return fmt.Errorf("%s vs %s: %w", ufr, ufi, ErrShapeMismatch)
	}
	for i := range rd {
		if rd[i] != id[i] {
			return fmt.Errorf("%s vs %s: %w", ufr, ufi, ErrShapeMismatch)
		}
	}
	if len(rd) < 2 || rd[0].Kind() != symbolic.IndexDimension {
		return fmt.Errorf("%s: leading frequency axis required: %w", ufr, ErrShapeMismatch)
	}
	if n := ufr.Shape()[0]; n != len(freq) {
		return fmt.Errorf("%s holds %d frequencies, got %d: %w", ufr, n, len(freq), ErrShapeMismatch)
	}

	return nil
}

// Coefficients returns the indexed field f over dim holding freq.
func Coefficients(dim *symbolic.Dimension, freq []float64) (*field.Function, error) {
	if err := ValidateFrequencies(freq); err != nil {
		return nil, err
	}

	return field.NewIndexed("f", dim, freq)
}

// Phase returns ωt = 2π·f·tsave·factor·dt.
func Phase(f, tsave symbolic.Expr, factor int, dt symbolic.Expr) symbolic.Expr {
	return symbolic.Mul(symbolic.Num(2), symbolic.Pi, f, tsave, symbolic.Num(float64(factor)), dt)
}

// Reconstruct returns ufr·cos(ωt) − ufi·sin(ωt).
func Reconstruct(ufr, ufi, omegaT symbolic.Expr) symbolic.Expr {
	return symbolic.Sub(
		symbolic.Mul(ufr, symbolic.Cos(omegaT)),
		symbolic.Mul(ufi, symbolic.Sin(omegaT)),
	)
}

// Update returns the on-the-fly DFT equations accumulating u into (ufr, ufi)
// every factor-th step:
//
//	ufr = ufr + factor·u·cos(ωt)
//	ufi = ufi − factor·u·sin(ωt)
func Update(u, ufr, ufi *field.Function, freq []float64, factor int) ([]symbolic.Eq, error) {
	time := u.TimeDim()
	if time == nil {
		return nil, fmt.Errorf("%s is not time dependent: %w", u, ErrShapeMismatch)
	}
	if err := ValidateFrequencies(freq); err != nil {
		return nil, err
	}
	if err := CheckAccumulators(ufr, ufi, freq); err != nil {
		return nil, err
	}

	tsave, factor := SubTime(time, factor)
	f, err := Coefficients(ufr.Dimensions()[0], freq)
	if err != nil {
		return nil, err
	}
	omegaT := Phase(f, tsave, factor, time.Spacing())
	scale := symbolic.Num(float64(factor))

	eqs := []symbolic.Eq{
		symbolic.NewEq(ufr, symbolic.Add(ufr, symbolic.Mul(scale, u, symbolic.Cos(omegaT)))),
		symbolic.NewEq(ufi, symbolic.Sub(ufi, symbolic.Mul(scale, u, symbolic.Sin(omegaT)))),
	}
	if tsave.IsConditional() {
		for i := range eqs {
			eqs[i] = eqs[i].When(tsave)
		}
	}

	return eqs, nil
}
