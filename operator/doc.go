// Package operator is a reference interpreter for update equations built
// with package symbolic: it loops over a time range and, per equation, over
// the interior of the equation's iteration space, evaluating the right-hand
// side pointwise and storing it into the left-hand-side field.
//
// Iteration space:
//   - the dimensions of the LHS field (time excluded), then any further
//     dimensions the RHS depends on (e.g. the DFT frequency index); the latter
//     are swept innermost, so an update like grad := expr(f) + grad sums
//     over f;
//   - each axis is shrunk by the stencil reach of the RHS (symbolic.Halo),
//     so derivatives never read outside their buffers;
//   - the time range is clamped to the temporal halo.
//
// Writes happen immediately (sequential semantics). Guarded equations
// (symbolic.Eq.When) only run on their active steps.
//
// The interpreter is deliberately simple: it exists to check constructed
// equations numerically, not to compete with a compiled solver.
package operator
