package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/symbolic"
)

// Model is the bag of physical-parameter fields over a grid.
type Model struct {
	grid       *field.Grid
	m          *field.Function
	dm         *field.Function
	rho        *field.Function
	irho       *field.Function
	spaceOrder int
}

// New builds a Model on g. Defaults: m = 1, rho = irho = 1, dm = 0,
// space order DefaultSpaceOrder.
//
// Errors: ErrNilGrid, ErrNonPositive (velocity/density), ErrNonFinite (dm),
// field.ErrDataLength when a value slice does not match the grid size.
func New(g *field.Grid, opts ...Option) (*Model, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := options{spaceOrder: DefaultSpaceOrder}
	for _, opt := range opts {
		opt(&o)
	}

	slowness := o.slowness2
	if o.velocity != nil {
		if err := checkPositive("velocity", o.velocity); err != nil {
			return nil, err
		}
		slowness = make([]float64, len(o.velocity))
		for i, vp := range o.velocity {
			slowness[i] = 1 / (vp * vp)
		}
	}
	if slowness == nil {
		slowness = []float64{1}
	}

	density := o.density
	if density == nil {
		density = []float64{1}
	}
	if err := checkPositive("density", density); err != nil {
		return nil, err
	}
	inverse := make([]float64, len(density))
	for i, r := range density {
		inverse[i] = 1 / r
	}

	dm := o.dm
	if dm == nil {
		dm = []float64{0}
	}
	for _, v := range dm {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}

	mod := &Model{grid: g, spaceOrder: o.spaceOrder}
	var err error
	so := field.WithSpaceOrder(o.spaceOrder)
	if mod.m, err = field.NewFunction("m", g, so, field.WithValues(slowness...)); err != nil {
		return nil, err
	}
	if mod.dm, err = field.NewFunction("dm", g, so, field.WithValues(dm...)); err != nil {
		return nil, err
	}
	if mod.rho, err = field.NewFunction("rho", g, so, field.WithValues(density...)); err != nil {
		return nil, err
	}
	if mod.irho, err = field.NewFunction("irho", g, so, field.WithValues(inverse...)); err != nil {
		return nil, err
	}

	return mod, nil
}

func checkPositive(what string, values []float64) error {
	for i, v := range values {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d]=%g: %w", what, i, v, ErrNonPositive)
		}
	}

	return nil
}

// Grid returns the underlying grid.
func (m *Model) Grid() *field.Grid { return m.grid }

// M returns the squared-slowness field.
func (m *Model) M() *field.Function { return m.m }

// DM returns the model perturbation field.
func (m *Model) DM() *field.Function { return m.dm }

// Rho returns the density field.
func (m *Model) Rho() *field.Function { return m.rho }

// IRho returns the inverse-density field.
func (m *Model) IRho() *field.Function { return m.irho }

// SpaceOrder returns the spatial finite-difference order.
func (m *Model) SpaceOrder() int { return m.spaceOrder }

// TimeDim returns the time dimension of the grid.
func (m *Model) TimeDim() *symbolic.Dimension { return m.grid.TimeDim() }

// DT returns the time-step symbol.
func (m *Model) DT() symbolic.Expr { return m.grid.TimeDim().Spacing() }

// NT returns the total-number-of-time-steps symbol.
func (m *Model) NT() symbolic.Expr { return m.grid.TimeDim().SymbolicMax() }

// SpaceDimensions returns the spatial dimensions of the grid.
func (m *Model) SpaceDimensions() []*symbolic.Dimension { return m.grid.Dimensions() }
