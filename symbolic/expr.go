// SPDX-License-Identifier: MIT

package symbolic

import (
	"fmt"
	"math"
	"strconv"
)

// Expr is a node of an expression tree.
//
// Contract:
//   - String renders deterministically (construction order is preserved).
//   - Eval computes the value at the indices carried by env.
//   - Args returns direct children (nil for leaves); it is read-only.
type Expr interface {
	fmt.Stringer
	Eval(env Env) (float64, error)
	Args() []Expr
}

// Indexed is implemented by leaves that depend on dimensions (fields and
// dimension symbols). It drives Dimensions and the operator iteration space.
type Indexed interface {
	Dimensions() []*Dimension
}

// Num is a literal float64.
type Num float64

// String renders the shortest representation that round-trips.
func (n Num) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// Eval returns the literal.
func (n Num) Eval(Env) (float64, error) { return float64(n), nil }

// Args returns nil.
func (n Num) Args() []Expr { return nil }

// Scalar is a named constant bound to a value, e.g. the time step dt or the
// number of time steps nt. It renders by name and evaluates to its value.
type Scalar struct {
	name  string
	value float64
}

// Pi is the symbolic constant π.
var Pi = NewScalar("pi", math.Pi)

// NewScalar returns a named constant.
func NewScalar(name string, value float64) *Scalar {
	return &Scalar{name: name, value: value}
}

// Name returns the symbol name.
func (s *Scalar) Name() string { return s.name }

// Value returns the bound value.
func (s *Scalar) Value() float64 { return s.value }

func (s *Scalar) String() string { return s.name }

// Eval returns the bound value.
func (s *Scalar) Eval(Env) (float64, error) { return s.value, nil }

// Args returns nil.
func (s *Scalar) Args() []Expr { return nil }

// Env maps dimensions to integer indices. The zero value is an empty Env.
// Bind never mutates the receiver, so an Env can be shared freely.
type Env struct {
	idx map[*Dimension]int
}

// NewEnv returns an empty environment.
func NewEnv() Env { return Env{} }

// Bind returns a copy of env with d (resolved to its root) set to i.
func (e Env) Bind(d *Dimension, i int) Env {
	next := make(map[*Dimension]int, len(e.idx)+1)
	for k, v := range e.idx {
		next[k] = v
	}
	next[d.Root()] = i

	return Env{idx: next}
}

// Index returns the index of d. Conditional dimensions resolve through their
// parent: index = parent / factor.
func (e Env) Index(d *Dimension) (int, bool) {
	if d.parent != nil {
		p, ok := e.Index(d.parent)
		if !ok {
			return 0, false
		}

		return p / d.factor, true
	}
	i, ok := e.idx[d]

	return i, ok
}
