// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seisgrad/dft"
	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/model"
)

// validate enforces the error priority documented in errors.go.
// Stage 1: closed-set key, nil model, nil wavefields.
// Stage 2: frequency configuration (frequency-domain keys only).
// Stage 3: wavefield variants, accumulator shapes and the model's axes.
func validate(c Condition, u, v Wavefield, mod *model.Model, o Options) error {
	if !c.Valid() {
		return keyErrorf(c, ErrUnknownCondition, "")
	}
	if mod == nil {
		return keyErrorf(c, ErrNilModel, "")
	}
	if err := checkWavefield(u); err != nil {
		return keyErrorf(c, err, "forward wavefield")
	}
	if err := checkWavefield(v); err != nil {
		return keyErrorf(c, err, "adjoint wavefield")
	}

	if c.IsFrequencyDomain() {
		if err := validateFrequencies(c, o); err != nil {
			return err
		}
		fd, ok := u.(FrequencyDomain)
		if !ok {
			return keyErrorf(c, ErrShapeMismatch, "forward wavefield must be FrequencyDomain, got %T", u)
		}
		if err := dft.CheckAccumulators(fd.Real, fd.Imag, o.freq); err != nil {
			return keyErrorf(c, ErrShapeMismatch, "%v", err)
		}
	} else {
		td, ok := u.(TimeDomain)
		if !ok {
			return keyErrorf(c, ErrShapeMismatch, "forward wavefield must be TimeDomain, got %T", u)
		}
		if !td.Field.IsTimeDependent() {
			return keyErrorf(c, ErrShapeMismatch, "forward wavefield %s has no time axis", td.Field)
		}
	}

	td, ok := v.(TimeDomain)
	if !ok {
		return keyErrorf(c, ErrShapeMismatch, "adjoint wavefield must be TimeDomain, got %T", v)
	}
	if !td.Field.IsTimeDependent() {
		return keyErrorf(c, ErrShapeMismatch, "adjoint wavefield %s has no time axis", td.Field)
	}

	for _, w := range [...]Wavefield{u, v} {
		for _, f := range fields(w) {
			if err := onModelGrid(f, mod); err != nil {
				return keyErrorf(c, ErrShapeMismatch, "%v", err)
			}
		}
	}

	return nil
}

// onModelGrid checks that f is laid over the model's axes: the model's
// spatial dimensions in order and, when f is timed, the model's time axis.
// Leading non-spatial axes (the frequency index of accumulators) are free.
func onModelGrid(f *field.Function, mod *model.Model) error {
	if td := f.TimeDim(); td != nil && td != mod.TimeDim() {
		return fmt.Errorf("%s: time axis %q is not the model's", f, td.Name())
	}
	got, want := f.SpaceDimensions(), mod.SpaceDimensions()
	if len(got) != len(want) {
		return fmt.Errorf("%s: %d spatial axes, model has %d", f, len(got), len(want))
	}
	for i, d := range want {
		if got[i] != d {
			return fmt.Errorf("%s: axis %q is not the model's %q", f, got[i].Name(), d.Name())
		}
	}

	return nil
}

func validateFrequencies(c Condition, o Options) error {
	if !o.hasFreq {
		return keyErrorf(c, ErrNoFrequencies, "")
	}
	if len(o.freq) == 0 {
		return keyErrorf(c, ErrEmptyFrequencies, "")
	}
	for i, f := range o.freq {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return keyErrorf(c, ErrInvalidFrequency, "freq[%d]=%g", i, f)
		}
	}

	return nil
}
