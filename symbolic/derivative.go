// SPDX-License-Identifier: MIT

package symbolic

import (
	"math"
	"strconv"
)

// Derivative is a centered finite-difference derivative of expr along dim.
// It evaluates by expanding the stencil at the current index, so derivatives
// of arbitrary expressions (products, reconstructed DFT fields) are exact
// discrete derivatives of the evaluated expression.
type Derivative struct {
	expr    Expr
	dim     *Dimension
	order   int
	fdOrder int
	weights []float64
}

// Diff returns the order-th derivative of e along dim at the given
// finite-difference order. Numeric expressions differentiate to Num(0).
// Panics on nil dim, order < 1 or fdOrder < 1 (programmer error).
func Diff(e Expr, dim *Dimension, order, fdOrder int) Expr {
	if dim == nil || order < 1 || fdOrder < 1 {
		panic("symbolic: Diff: dim must be non-nil, order and fdOrder >= 1")
	}
	if _, ok := e.(Num); ok {
		return Num(0)
	}

	return &Derivative{
		expr:    e,
		dim:     dim.Root(),
		order:   order,
		fdOrder: fdOrder,
		weights: FDWeights(order, fdOrder),
	}
}

// Grad returns the first derivatives of e along each of dims.
func Grad(e Expr, dims []*Dimension, fdOrder int) []Expr {
	out := make([]Expr, len(dims))
	for i, d := range dims {
		out[i] = Diff(e, d, 1, fdOrder)
	}

	return out
}

// Dot returns Σ a[i]*b[i]. Panics when the lengths differ.
func Dot(a, b []Expr) Expr {
	if len(a) != len(b) {
		panic("symbolic: Dot: length mismatch")
	}
	terms := make([]Expr, len(a))
	for i := range a {
		terms[i] = Mul(a[i], b[i])
	}

	return Add(terms...)
}

// Expr returns the differentiated expression.
func (d *Derivative) Expr() Expr { return d.expr }

// Dim returns the differentiation dimension.
func (d *Derivative) Dim() *Dimension { return d.dim }

// Order returns the derivative order.
func (d *Derivative) Order() int { return d.order }

// FDOrder returns the finite-difference accuracy order.
func (d *Derivative) FDOrder() int { return d.fdOrder }

// Radius returns the stencil half-width.
func (d *Derivative) Radius() int { return len(d.weights) / 2 }

// Args returns the differentiated expression.
func (d *Derivative) Args() []Expr { return []Expr{d.expr} }

// Eval expands the stencil: Σ_k w_k·expr(i+k) / h^order.
func (d *Derivative) Eval(env Env) (float64, error) {
	i, ok := env.Index(d.dim)
	if !ok {
		return 0, unboundErrorf(d.dim)
	}
	h, err := d.dim.Spacing().Eval(env)
	if err != nil {
		return 0, err
	}

	r := d.Radius()
	var acc float64
	for k, w := range d.weights {
		if w == 0 {
			continue
		}
		v, err := d.expr.Eval(env.Bind(d.dim, i+k-r))
		if err != nil {
			return 0, err
		}
		acc += w * v
	}

	return acc / math.Pow(h, float64(d.order)), nil
}

// String renders "Derivative(expr, (dim, order))".
func (d *Derivative) String() string {
	return "Derivative(" + d.expr.String() + ", (" + d.dim.Name() + ", " + strconv.Itoa(d.order) + "))"
}
