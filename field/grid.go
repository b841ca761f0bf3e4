// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seisgrad/symbolic"
)

// spaceNames names spatial axes by rank.
var spaceNames = [...]string{"x", "y", "z"}

// Grid is a regular Cartesian grid with a time axis.
type Grid struct {
	shape   []int
	spacing []float64
	dims    []*symbolic.Dimension
	time    *symbolic.Dimension
	dt      *symbolic.Scalar
	nt      *symbolic.Scalar
}

// NewGrid builds a 1-3D grid. Spatial axes are named x, y, z with spacing
// symbols h_x, h_y, h_z; the time axis is "t" with symbols dt and nt.
//
// Errors: ErrBadShape (rank outside 1..3, non-positive extent),
// ErrDimensionMismatch (len(spacing) != len(shape)), ErrBadSpacing.
func NewGrid(shape []int, spacing []float64, opts ...GridOption) (*Grid, error) {
	if len(shape) == 0 || len(shape) > len(spaceNames) {
		return nil, fmt.Errorf("rank %d: %w", len(shape), ErrBadShape)
	}
	if len(spacing) != len(shape) {
		return nil, ErrDimensionMismatch
	}
	cfg := gridConfig{dt: DefaultDT, nt: DefaultNT}
	for _, o := range opts {
		o(&cfg)
	}

	g := &Grid{
		shape:   append([]int(nil), shape...),
		spacing: append([]float64(nil), spacing...),
		dims:    make([]*symbolic.Dimension, len(shape)),
		dt:      symbolic.NewScalar("dt", cfg.dt),
		nt:      symbolic.NewScalar("nt", float64(cfg.nt)),
	}
	for i, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("axis %s extent %d: %w", spaceNames[i], n, ErrBadShape)
		}
		h := spacing[i]
		if !(h > 0) || math.IsInf(h, 0) {
			return nil, fmt.Errorf("axis %s spacing %g: %w", spaceNames[i], h, ErrBadSpacing)
		}
		name := spaceNames[i]
		g.dims[i] = symbolic.NewDimension(name, symbolic.NewScalar("h_"+name, h))
	}
	g.time = symbolic.NewTimeDimension("t", g.dt, g.nt)

	return g, nil
}

// Shape returns a copy of the spatial extents.
func (g *Grid) Shape() []int { return append([]int(nil), g.shape...) }

// Spacing returns a copy of the spatial spacings.
func (g *Grid) Spacing() []float64 { return append([]float64(nil), g.spacing...) }

// Dimensions returns the spatial dimensions in axis order.
func (g *Grid) Dimensions() []*symbolic.Dimension {
	return append([]*symbolic.Dimension(nil), g.dims...)
}

// NDim returns the spatial rank.
func (g *Grid) NDim() int { return len(g.dims) }

// Size returns the number of spatial points.
func (g *Grid) Size() int {
	n := 1
	for _, s := range g.shape {
		n *= s
	}

	return n
}

// TimeDim returns the time dimension.
func (g *Grid) TimeDim() *symbolic.Dimension { return g.time }

// DT returns the time-step value.
func (g *Grid) DT() float64 { return g.dt.Value() }

// NT returns the number of time steps.
func (g *Grid) NT() int { return int(g.nt.Value()) }
