package operator

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/internal/ctxlog"
	"github.com/katalvlaran/seisgrad/symbolic"
)

// Operator applies a fixed list of equations.
type Operator struct {
	name  string
	plans []plan
	time  *symbolic.Dimension
	nt    int // time buffer extent
	tLo   int // first valid step (temporal halo)
	tHi   int // one past the last valid step
}

// plan is the resolved iteration space of one equation.
type plan struct {
	eq   symbolic.Eq
	lhs  *field.Function
	dims []*symbolic.Dimension
	lo   []int
	hi   []int
}

// Summary reports what Apply did.
type Summary struct {
	Steps   int // time steps visited
	Updates int // pointwise stores
}

// New resolves the iteration space of each equation.
//
// Errors: ErrNoEquations, ErrBadLHS, ErrUnsized, ErrNoInterior.
func New(eqs []symbolic.Eq, opts ...Option) (*Operator, error) {
	if len(eqs) == 0 {
		return nil, ErrNoEquations
	}
	o := options{name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}

	op := &Operator{name: o.name, nt: math.MaxInt}
	tHalo := 0
	for i, eq := range eqs {
		lhs, ok := eq.LHS.(*field.Function)
		if !ok {
			return nil, fmt.Errorf("equation %d (%T): %w", i, eq.LHS, ErrBadLHS)
		}
		sizes := extents(lhs, eq.RHS)
		halo := symbolic.Halo(eq.RHS)

		if eq.Guard != nil && eq.Guard.Root().Kind() == symbolic.TimeDimension {
			op.bindTime(eq.Guard.Root(), sizes)
		}

		p := plan{eq: eq, lhs: lhs}
		for _, d := range loopDimensions(lhs, eq.RHS) {
			if d.Kind() == symbolic.TimeDimension {
				op.bindTime(d, sizes)
				tHalo = max(tHalo, halo[d])
				continue
			}
			n, ok := sizes[d]
			if !ok {
				return nil, fmt.Errorf("equation %d, dimension %q: %w", i, d.Name(), ErrUnsized)
			}
			lo, hi := halo[d], n-halo[d]
			if hi <= lo {
				return nil, fmt.Errorf("equation %d, dimension %q (extent %d, halo %d): %w", i, d.Name(), n, halo[d], ErrNoInterior)
			}
			p.dims = append(p.dims, d)
			p.lo = append(p.lo, lo)
			p.hi = append(p.hi, hi)
		}
		op.plans = append(op.plans, p)
	}

	if op.time != nil {
		op.tLo, op.tHi = tHalo, op.nt-tHalo
		if op.tHi <= op.tLo {
			return nil, fmt.Errorf("time extent %d, halo %d: %w", op.nt, tHalo, ErrNoInterior)
		}
	}

	return op, nil
}

// bindTime records the time axis and shrinks the buffer extent.
func (op *Operator) bindTime(d *symbolic.Dimension, sizes map[*symbolic.Dimension]int) {
	op.time = d
	if n, ok := sizes[d]; ok {
		op.nt = min(op.nt, n)
		return
	}
	if smax := d.SymbolicMax(); smax != nil && op.nt == math.MaxInt {
		if v, err := smax.Eval(symbolic.NewEnv()); err == nil {
			op.nt = int(v)
		}
	}
}

// extents collects the smallest extent per root dimension over every field
// the equation touches.
func extents(lhs *field.Function, rhs symbolic.Expr) map[*symbolic.Dimension]int {
	sizes := make(map[*symbolic.Dimension]int)
	record := func(f *field.Function) {
		shape := f.Shape()
		for i, d := range f.Dimensions() {
			r := d.Root()
			if n, ok := sizes[r]; !ok || shape[i] < n {
				sizes[r] = shape[i]
			}
		}
	}
	record(lhs)
	symbolic.Walk(rhs, func(e symbolic.Expr) bool {
		if f, ok := e.(*field.Function); ok {
			record(f)
		}

		return true
	})

	return sizes
}

// loopDimensions lists LHS dimensions first, then RHS-only dimensions.
func loopDimensions(lhs *field.Function, rhs symbolic.Expr) []*symbolic.Dimension {
	var out []*symbolic.Dimension
	seen := make(map[*symbolic.Dimension]bool)
	for _, d := range append(lhs.Dimensions(), symbolic.Dimensions(rhs)...) {
		r := d.Root()
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}

	return out
}

// TimeWindow returns the valid half-open step range [lo, hi). Both are zero
// for operators without a time axis.
func (op *Operator) TimeWindow() (lo, hi int) { return op.tLo, op.tHi }

// Apply runs every equation for each step in [tmin, tmax) clamped to the
// valid time window. Operators without a time axis run exactly once and
// ignore the range. Cancellation is checked between steps.
//
// Errors: ErrTimeRange, evaluation errors (wrapped with equation index),
// ctx.Err().
func (op *Operator) Apply(ctx context.Context, tmin, tmax int) (Summary, error) {
	logger := ctxlog.FromContext(ctx).With("operator", op.name)
	var sum Summary

	if op.time == nil {
		if err := op.step(symbolic.NewEnv(), &sum); err != nil {
			return sum, err
		}
		sum.Steps = 1
		logger.Info("operator applied", "steps", sum.Steps, "updates", sum.Updates)

		return sum, nil
	}

	if tmin < 0 || tmax < tmin || tmax > op.nt {
		return sum, fmt.Errorf("[%d, %d) outside [0, %d]: %w", tmin, tmax, op.nt, ErrTimeRange)
	}
	lo, hi := max(tmin, op.tLo), min(tmax, op.tHi)
	if lo != tmin || hi != tmax {
		logger.Debug("time range clamped to halo", "from", []int{tmin, tmax}, "to", []int{lo, hi})
	}
	for i, p := range op.plans {
		logger.Debug("equation plan", "index", i, "lhs", p.lhs.Name(), "dims", dimNames(p.dims), "lo", p.lo, "hi", p.hi)
	}

	for t := lo; t < hi; t++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if err := op.step(symbolic.NewEnv().Bind(op.time, t), &sum); err != nil {
			return sum, fmt.Errorf("t=%d: %w", t, err)
		}
		sum.Steps++
	}
	logger.Info("operator applied", "steps", sum.Steps, "updates", sum.Updates)

	return sum, nil
}

// step runs every active equation once at env.
func (op *Operator) step(env symbolic.Env, sum *Summary) error {
	for i := range op.plans {
		p := &op.plans[i]
		if !p.eq.Active(env) {
			continue
		}
		err := p.each(env, func(e symbolic.Env) error {
			v, err := p.eq.RHS.Eval(e)
			if err != nil {
				return err
			}
			sum.Updates++

			return p.lhs.Store(e, v)
		})
		if err != nil {
			return fmt.Errorf("equation %d: %w", i, err)
		}
	}

	return nil
}

// each visits the interior points of the plan in row-major order.
func (p *plan) each(env symbolic.Env, fn func(symbolic.Env) error) error {
	if len(p.dims) == 0 {
		return fn(env)
	}
	idx := append([]int(nil), p.lo...)
	for {
		e := env
		for i, d := range p.dims {
			e = e.Bind(d, idx[i])
		}
		if err := fn(e); err != nil {
			return err
		}

		k := len(idx) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < p.hi[k] {
				break
			}
			idx[k] = p.lo[k]
		}
		if k < 0 {
			return nil
		}
	}
}

func dimNames(dims []*symbolic.Dimension) []string {
	out := make([]string, len(dims))
	for i, d := range dims {
		out[i] = d.Name()
	}

	return out
}
