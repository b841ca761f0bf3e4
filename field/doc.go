// SPDX-License-Identifier: MIT

// Package field provides grids and grid functions: named, data-carrying
// leaves of symbolic expressions.
//
// A Grid fixes the spatial axes (x, y, z), their spacings and the time axis
// (dt, nt). Functions are built on a grid (static parameters such as m or
// rho), on grid+time (wavefields with full history), or on an arbitrary list
// of dimensions (DFT accumulators indexed by frequency, coefficient arrays).
//
// Every Function implements symbolic.Expr: it renders as "u(t, x, y)" and
// evaluates by reading its Data at the indices bound in a symbolic.Env.
//
// Storage is a flat row-major buffer (Data), addressed with bounds-checked
// At/Set; out-of-range reads return ErrOutOfRange, never panic.
package field
