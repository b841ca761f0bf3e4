// SPDX-License-Identifier: MIT

package symbolic

// DimensionKind classifies an axis.
type DimensionKind int

const (
	// SpaceDimension is a spatial grid axis with a physical spacing.
	SpaceDimension DimensionKind = iota

	// TimeDimension is the stepping axis; it carries dt and the number of steps.
	TimeDimension

	// IndexDimension is a plain enumeration axis (e.g. the frequency index of
	// DFT accumulators). It has no spacing and is never differentiated.
	IndexDimension
)

// Dimension is an axis of the discrete space-time grid. It is also an Expr:
// used inside an expression it evaluates to its current integer index, which
// is how the subsampled time index enters DFT phases.
type Dimension struct {
	name    string
	kind    DimensionKind
	spacing Expr
	max     Expr
	parent  *Dimension
	factor  int
}

// NewDimension returns a spatial dimension with the given spacing symbol.
func NewDimension(name string, spacing Expr) *Dimension {
	return &Dimension{name: name, kind: SpaceDimension, spacing: spacing, factor: 1}
}

// NewTimeDimension returns the time axis. spacing is dt, max is the total
// number of time steps used for normalisation.
func NewTimeDimension(name string, spacing, max Expr) *Dimension {
	return &Dimension{name: name, kind: TimeDimension, spacing: spacing, max: max, factor: 1}
}

// NewIndexDimension returns an enumeration axis without spacing.
func NewIndexDimension(name string) *Dimension {
	return &Dimension{name: name, kind: IndexDimension, spacing: Num(1), factor: 1}
}

// NewConditionalDimension returns a subsampled view of parent: its index is
// parent/factor. Panics if parent is nil or factor < 1 (programmer error).
func NewConditionalDimension(name string, parent *Dimension, factor int) *Dimension {
	if parent == nil || factor < 1 {
		panic("symbolic: NewConditionalDimension: parent must be non-nil and factor >= 1")
	}

	return &Dimension{
		name:    name,
		kind:    parent.kind,
		spacing: parent.spacing,
		max:     parent.max,
		parent:  parent,
		factor:  factor,
	}
}

// Name returns the dimension name.
func (d *Dimension) Name() string { return d.name }

// Kind returns the axis class.
func (d *Dimension) Kind() DimensionKind { return d.kind }

// Spacing returns the grid spacing symbol (dt for time).
func (d *Dimension) Spacing() Expr { return d.spacing }

// SymbolicMax returns the number-of-steps symbol of a time axis, nil otherwise.
func (d *Dimension) SymbolicMax() Expr { return d.max }

// Parent returns the parent of a conditional dimension, nil for roots.
func (d *Dimension) Parent() *Dimension { return d.parent }

// Factor returns the subsampling factor (1 for roots).
func (d *Dimension) Factor() int { return d.factor }

// IsConditional reports whether d subsamples another dimension.
func (d *Dimension) IsConditional() bool { return d.parent != nil }

// Root follows parents up to the underlying stepping dimension.
func (d *Dimension) Root() *Dimension {
	for d.parent != nil {
		d = d.parent
	}

	return d
}

func (d *Dimension) String() string { return d.name }

// Eval returns the current index of d as a float.
func (d *Dimension) Eval(env Env) (float64, error) {
	i, ok := env.Index(d)
	if !ok {
		return 0, unboundErrorf(d)
	}

	return float64(i), nil
}

// Args returns nil.
func (d *Dimension) Args() []Expr { return nil }

// Dimensions returns the root dimension d depends on.
func (d *Dimension) Dimensions() []*Dimension { return []*Dimension{d.Root()} }
