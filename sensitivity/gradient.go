// SPDX-License-Identifier: MIT

package sensitivity

import (
	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/model"
	"github.com/katalvlaran/seisgrad/symbolic"
)

// ImagingCondition returns the contribution selected by the options:
// WithFrequencies picks the DFT family, WithISIC the inverse-scattering one.
//
// Errors (in priority order): ErrNilModel, ErrNilWavefield, ErrNoFrequencies,
// ErrEmptyFrequencies, ErrInvalidFrequency, ErrShapeMismatch.
func ImagingCondition(u, v Wavefield, mod *model.Model, opts ...Option) (symbolic.Expr, error) {
	o := gatherOptions(opts...)

	return o.Condition().build(u, v, mod, o)
}

// Expr builds the imaging condition c regardless of the selection options.
// Frequency-domain conditions still need WithFrequencies.
func (c Condition) Expr(u, v Wavefield, mod *model.Model, opts ...Option) (symbolic.Expr, error) {
	return c.build(u, v, mod, gatherOptions(opts...))
}

func (c Condition) build(u, v Wavefield, mod *model.Model, o Options) (symbolic.Expr, error) {
	if err := validate(c, u, v, mod, o); err != nil {
		return nil, err
	}
	expr, err := imagingFormulas[c](u, v, mod, o)
	if err != nil {
		return nil, keyErrorf(c, err, "")
	}

	return expr, nil
}

// GradientUpdate returns the single equation grad := contribution + grad
// for the condition selected by the options.
// The gradient is only ever accumulated into, never overwritten; neither
// grad nor the wavefields are touched during construction.
func GradientUpdate(grad *field.Function, u, v Wavefield, mod *model.Model, opts ...Option) ([]symbolic.Eq, error) {
	o := gatherOptions(opts...)

	return o.Condition().gradientUpdate(grad, u, v, mod, o)
}

// GradientUpdate is the package-level GradientUpdate for condition c,
// ignoring WithISIC and the frequency-driven selection.
func (c Condition) GradientUpdate(grad *field.Function, u, v Wavefield, mod *model.Model, opts ...Option) ([]symbolic.Eq, error) {
	return c.gradientUpdate(grad, u, v, mod, gatherOptions(opts...))
}

func (c Condition) gradientUpdate(grad *field.Function, u, v Wavefield, mod *model.Model, o Options) ([]symbolic.Eq, error) {
	if grad == nil {
		return nil, ErrNilGradient
	}
	expr, err := c.build(u, v, mod, o)
	if err != nil {
		return nil, err
	}
	if err = onModelGrid(grad, mod); err != nil {
		return nil, keyErrorf(c, ErrShapeMismatch, "gradient: %v", err)
	}

	return []symbolic.Eq{symbolic.NewEq(grad, symbolic.Add(expr, grad))}, nil
}
