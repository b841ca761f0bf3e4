// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seisgrad/symbolic"
)

// Function is a named field over a list of dimensions, backed by Data.
// It is a leaf of symbolic expressions.
type Function struct {
	name       string
	dims       []*symbolic.Dimension
	data       *Data
	spaceOrder int
	timeOrder  int
}

// NewFunction returns a static field over the spatial axes of g.
func NewFunction(name string, g *Grid, opts ...FunctionOption) (*Function, error) {
	return NewFunctionOn(name, g.Dimensions(), g.Shape(), opts...)
}

// NewTimeFunction returns a wavefield over (t, x, ...) storing the full
// history of g.NT() steps.
func NewTimeFunction(name string, g *Grid, opts ...FunctionOption) (*Function, error) {
	dims := append([]*symbolic.Dimension{g.TimeDim()}, g.Dimensions()...)
	shape := append([]int{g.NT()}, g.Shape()...)

	return NewFunctionOn(name, dims, shape, opts...)
}

// NewIndexed returns a 1-D coefficient field over dim holding values.
// The length of values is the extent of the field.
func NewIndexed(name string, dim *symbolic.Dimension, values []float64) (*Function, error) {
	if len(values) == 0 {
		return nil, fieldErrorf("NewIndexed", name, ErrBadShape)
	}

	return NewFunctionOn(name, []*symbolic.Dimension{dim}, []int{len(values)}, WithValues(values...))
}

// NewFunctionOn returns a field over arbitrary dimensions with the given extents.
// Stage 1 (Validate): dims and shape have equal, non-zero rank.
// Stage 2 (Prepare): allocate Data.
// Stage 3 (Finalize): load literal values if provided.
func NewFunctionOn(name string, dims []*symbolic.Dimension, shape []int, opts ...FunctionOption) (*Function, error) {
	if len(dims) != len(shape) {
		return nil, fieldErrorf("NewFunctionOn", name, ErrDimensionMismatch)
	}
	cfg := gatherFunctionOptions(opts...)
	data, err := NewData(shape...)
	if err != nil {
		return nil, fieldErrorf("NewFunctionOn", name, err)
	}
	if cfg.values != nil {
		if err = data.CopyFrom(cfg.values); err != nil {
			return nil, fieldErrorf("NewFunctionOn", name, err)
		}
	}

	return &Function{
		name:       name,
		dims:       append([]*symbolic.Dimension(nil), dims...),
		data:       data,
		spaceOrder: cfg.spaceOrder,
		timeOrder:  cfg.timeOrder,
	}, nil
}

// Name returns the field name.
func (f *Function) Name() string { return f.name }

// Dimensions returns the field dimensions in storage order.
func (f *Function) Dimensions() []*symbolic.Dimension {
	return append([]*symbolic.Dimension(nil), f.dims...)
}

// SpaceDimensions returns the spatial dimensions only.
func (f *Function) SpaceDimensions() []*symbolic.Dimension {
	var out []*symbolic.Dimension
	for _, d := range f.dims {
		if d.Kind() == symbolic.SpaceDimension {
			out = append(out, d)
		}
	}

	return out
}

// TimeDim returns the time dimension, or nil for static fields.
func (f *Function) TimeDim() *symbolic.Dimension {
	for _, d := range f.dims {
		if d.Kind() == symbolic.TimeDimension {
			return d
		}
	}

	return nil
}

// IsTimeDependent reports whether the field carries a time axis.
func (f *Function) IsTimeDependent() bool { return f.TimeDim() != nil }

// Shape returns the extents in storage order.
func (f *Function) Shape() []int { return f.data.Shape() }

// Data returns the backing buffer.
func (f *Function) Data() *Data { return f.data }

// SpaceOrder returns the spatial finite-difference order.
func (f *Function) SpaceOrder() int { return f.spaceOrder }

// TimeOrder returns the temporal finite-difference order.
func (f *Function) TimeOrder() int { return f.timeOrder }

// Dt2 returns the second time derivative along time at the field's time order.
func (f *Function) Dt2(time *symbolic.Dimension) symbolic.Expr {
	return symbolic.Diff(f, time, 2, f.timeOrder)
}

// String renders "name(d0, d1, ...)".
func (f *Function) String() string {
	names := make([]string, len(f.dims))
	for i, d := range f.dims {
		names[i] = d.Name()
	}

	return f.name + "(" + strings.Join(names, ", ") + ")"
}

// Args returns nil: fields are leaves.
func (f *Function) Args() []symbolic.Expr { return nil }

// Eval reads the value at the indices bound in env.
func (f *Function) Eval(env symbolic.Env) (float64, error) {
	idx, err := f.Indices(env)
	if err != nil {
		return 0, err
	}
	v, err := f.data.At(idx...)
	if err != nil {
		return 0, fieldErrorf("Eval", f.name, err)
	}

	return v, nil
}

// Indices resolves the storage index tuple of f at env.
func (f *Function) Indices(env symbolic.Env) ([]int, error) {
	idx := make([]int, len(f.dims))
	for i, d := range f.dims {
		v, ok := env.Index(d)
		if !ok {
			return nil, fmt.Errorf("%s: dimension %q: %w", f.name, d.Name(), symbolic.ErrUnboundIndex)
		}
		idx[i] = v
	}

	return idx, nil
}

// Store writes v at the indices bound in env.
func (f *Function) Store(env symbolic.Env, v float64) error {
	idx, err := f.Indices(env)
	if err != nil {
		return err
	}
	if err = f.data.Set(v, idx...); err != nil {
		return fieldErrorf("Store", f.name, err)
	}

	return nil
}
