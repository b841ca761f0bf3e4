// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sum is an ordered sum of terms. Build it with Add.
type Sum struct{ terms []Expr }

// Product is an ordered product of factors. A numeric coefficient, when
// present, is always the first factor. Build it with Mul.
type Product struct{ factors []Expr }

// Power raises base to a constant exponent. Build it with Pow.
type Power struct {
	base Expr
	exp  float64
}

// Call applies a named scalar function (cos, sin) to its argument.
type Call struct {
	name string
	fn   func(float64) float64
	arg  Expr
}

// Add returns the sum of terms. Nested sums are flattened, numeric terms are
// folded into one trailing constant and zero is dropped.
func Add(terms ...Expr) Expr {
	flat := make([]Expr, 0, len(terms))
	var c float64
	for _, t := range terms {
		switch v := t.(type) {
		case *Sum:
			for _, inner := range v.terms {
				if n, ok := inner.(Num); ok {
					c += float64(n)
					continue
				}
				flat = append(flat, inner)
			}
		case Num:
			c += float64(v)
		default:
			flat = append(flat, t)
		}
	}
	if c != 0 {
		flat = append(flat, Num(c))
	}
	switch len(flat) {
	case 0:
		return Num(0)
	case 1:
		return flat[0]
	}

	return &Sum{terms: flat}
}

// Mul returns the product of factors. Nested products are flattened and
// numeric factors fold into a leading coefficient; a zero coefficient
// collapses the product to Num(0), a unit coefficient is dropped.
func Mul(factors ...Expr) Expr {
	flat := make([]Expr, 0, len(factors))
	c := 1.0
	for _, f := range factors {
		switch v := f.(type) {
		case *Product:
			for _, inner := range v.factors {
				if n, ok := inner.(Num); ok {
					c *= float64(n)
					continue
				}
				flat = append(flat, inner)
			}
		case Num:
			c *= float64(v)
		default:
			flat = append(flat, f)
		}
	}
	if c == 0 {
		return Num(0)
	}
	if c != 1 {
		flat = append([]Expr{Num(c)}, flat...)
	}
	switch len(flat) {
	case 0:
		return Num(c)
	case 1:
		return flat[0]
	}

	return &Product{factors: flat}
}

// Pow returns base**exp with trivial exponents and numeric bases folded.
func Pow(base Expr, exp float64) Expr {
	switch {
	case exp == 0:
		return Num(1)
	case exp == 1:
		return base
	}
	switch v := base.(type) {
	case Num:
		return Num(math.Pow(float64(v), exp))
	case *Power:
		return Pow(v.base, v.exp*exp)
	}

	return &Power{base: base, exp: exp}
}

// Neg returns -e.
func Neg(e Expr) Expr { return Mul(Num(-1), e) }

// Sub returns a - b.
func Sub(a, b Expr) Expr { return Add(a, Neg(b)) }

// Div returns a / b.
func Div(a, b Expr) Expr { return Mul(a, Pow(b, -1)) }

// Cos returns cos(e); numeric arguments are folded.
func Cos(e Expr) Expr { return call("cos", math.Cos, e) }

// Sin returns sin(e); numeric arguments are folded.
func Sin(e Expr) Expr { return call("sin", math.Sin, e) }

func call(name string, fn func(float64) float64, e Expr) Expr {
	if n, ok := e.(Num); ok {
		return Num(fn(float64(n)))
	}

	return &Call{name: name, fn: fn, arg: e}
}

// ---------- Sum ----------

// Terms returns the summands (read-only).
func (s *Sum) Terms() []Expr { return s.terms }

// Args returns the summands.
func (s *Sum) Args() []Expr { return s.terms }

// Eval adds the terms left to right.
func (s *Sum) Eval(env Env) (float64, error) {
	var acc float64
	for _, t := range s.terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		acc += v
	}

	return acc, nil
}

// String renders "a + b - c"; negative terms are shown with a minus sign.
func (s *Sum) String() string {
	var b strings.Builder
	for i, t := range s.terms {
		neg := isNegative(t)
		switch {
		case i == 0:
			b.WriteString(t.String())
			continue
		case neg:
			b.WriteString(" - ")
			b.WriteString(wrap(Neg(t), false))
		default:
			b.WriteString(" + ")
			b.WriteString(t.String())
		}
	}

	return b.String()
}

// ---------- Product ----------

// Factors returns the factors (read-only).
func (p *Product) Factors() []Expr { return p.factors }

// Args returns the factors.
func (p *Product) Args() []Expr { return p.factors }

// Eval multiplies the factors left to right.
func (p *Product) Eval(env Env) (float64, error) {
	acc := 1.0
	for _, f := range p.factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		acc *= v
	}

	return acc, nil
}

// String renders "c*a*b/d": factors with negative exponents go to the
// denominator, sums are parenthesised.
func (p *Product) String() string {
	var (
		coef = 1.0
		num  []string
		den  []string
	)
	for _, f := range p.factors {
		switch v := f.(type) {
		case Num:
			coef = float64(v)
		case *Power:
			if v.exp < 0 {
				den = append(den, denominator(Pow(v.base, -v.exp)))
				continue
			}
			num = append(num, wrap(v, false))
		default:
			num = append(num, wrap(v, false))
		}
	}

	var b strings.Builder
	switch {
	case len(num) == 0:
		b.WriteString(Num(coef).String())
	case coef == -1:
		b.WriteString("-")
	case coef != 1:
		b.WriteString(Num(coef).String())
		b.WriteString("*")
	}
	b.WriteString(strings.Join(num, "*"))
	for _, d := range den {
		b.WriteString("/")
		b.WriteString(d)
	}

	return b.String()
}

// ---------- Power ----------

// Base returns the base expression.
func (p *Power) Base() Expr { return p.base }

// Exp returns the exponent.
func (p *Power) Exp() float64 { return p.exp }

// Args returns the base.
func (p *Power) Args() []Expr { return []Expr{p.base} }

// Eval returns base**exp; a non-finite result yields ErrNonFinite.
func (p *Power) Eval(env Env) (float64, error) {
	b, err := p.base.Eval(env)
	if err != nil {
		return 0, err
	}
	v := math.Pow(b, p.exp)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s at base %g: %w", p, b, ErrNonFinite)
	}

	return v, nil
}

// String renders "b**e", or "1/b" for negative exponents.
func (p *Power) String() string {
	if p.exp < 0 {
		return "1/" + denominator(Pow(p.base, -p.exp))
	}

	return wrap(p.base, true) + "**" + strconv.FormatFloat(p.exp, 'g', -1, 64)
}

// ---------- Call ----------

// Name returns the function name.
func (c *Call) Name() string { return c.name }

// Args returns the argument.
func (c *Call) Args() []Expr { return []Expr{c.arg} }

// Eval applies the function to the evaluated argument.
func (c *Call) Eval(env Env) (float64, error) {
	v, err := c.arg.Eval(env)
	if err != nil {
		return 0, err
	}

	return c.fn(v), nil
}

func (c *Call) String() string { return c.name + "(" + c.arg.String() + ")" }

// ---------- helpers ----------

// wrap parenthesises sums always, and products/powers when strict.
func wrap(e Expr, strict bool) string {
	switch e.(type) {
	case *Sum:
		return "(" + e.String() + ")"
	case *Product, *Power:
		if strict {
			return "(" + e.String() + ")"
		}
	case Num:
		if float64(e.(Num)) < 0 {
			return "(" + e.String() + ")"
		}
	}

	return e.String()
}

// denominator parenthesises sums and products placed after a "/".
func denominator(e Expr) string {
	switch e.(type) {
	case *Sum, *Product:
		return "(" + e.String() + ")"
	}

	return e.String()
}

// isNegative reports a leading negative coefficient.
func isNegative(e Expr) bool {
	switch v := e.(type) {
	case Num:
		return v < 0
	case *Product:
		if n, ok := v.factors[0].(Num); ok {
			return n < 0
		}
	}

	return false
}
