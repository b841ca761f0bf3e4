// SPDX-License-Identifier: MIT

// Package symbolic is the small expression engine behind seisgrad: scalar
// symbols, index dimensions, arithmetic, trigonometric calls, centered
// finite-difference derivatives and equations.
//
// 🚀 What is it for?
//
//	Imaging conditions and linearized sources are *constructed*, not run.
//	This package gives them a vocabulary:
//	  • Num, Scalar:           literal numbers and named constants (dt, nt, pi)
//	  • Dimension:             space, time, index and conditional (subsampled) axes
//	  • Add, Mul, Pow, Cos…:   arithmetic with light, deterministic folding
//	  • Diff, Grad, Dot:       finite-difference derivatives at a given order
//	  • Eq:                    "lhs := rhs" update equations
//
// ✨ Key properties:
//   - Deterministic rendering: String() keeps construction order, so the same
//     calls always print the same text (golden-file friendly).
//   - Pointwise evaluation: every Expr evaluates at an Env (dimension → index),
//     derivatives expand into their stencils on the fly.
//   - No global state; expressions are immutable once built.
//
// ⚙️ Usage:
//
//	x := symbolic.NewDimension("x", symbolic.NewScalar("h_x", 10))
//	e := symbolic.Mul(symbolic.Num(2), symbolic.Pi, x)
//	v, err := e.Eval(symbolic.NewEnv().Bind(x, 3)) // 6π
//
// Field leaves (grid functions holding data) live in package field and plug
// in through the Expr interface.
package symbolic
