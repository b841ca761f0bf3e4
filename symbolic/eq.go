// SPDX-License-Identifier: MIT

package symbolic

// Eq is an update equation "LHS := RHS". LHS is expected to be a writable
// field; the executor decides what writable means. When Guard is set the
// equation only applies on steps where the guard's parent index is a
// multiple of its factor.
type Eq struct {
	LHS   Expr
	RHS   Expr
	Guard *Dimension
}

// NewEq returns lhs := rhs.
func NewEq(lhs, rhs Expr) Eq { return Eq{LHS: lhs, RHS: rhs} }

// When returns a copy of eq guarded by the conditional dimension d.
func (eq Eq) When(d *Dimension) Eq {
	eq.Guard = d

	return eq
}

// Active reports whether eq applies at env.
func (eq Eq) Active(env Env) bool {
	if eq.Guard == nil || !eq.Guard.IsConditional() {
		return true
	}
	p, ok := env.Index(eq.Guard.Parent())
	if !ok {
		return false
	}

	return p%eq.Guard.Factor() == 0
}

// String renders "lhs = rhs".
func (eq Eq) String() string { return eq.LHS.String() + " = " + eq.RHS.String() }
