// SPDX-License-Identifier: MIT

package symbolic

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrUnboundIndex is returned when an expression is evaluated at an Env
	// that carries no index for one of the dimensions it depends on.
	ErrUnboundIndex = errors.New("symbolic: unbound dimension index")

	// ErrNonFinite is returned when evaluation produces NaN or ±Inf
	// (typically a division by a zero-valued field).
	ErrNonFinite = errors.New("symbolic: non-finite value")
)

// unboundErrorf attaches the dimension name to ErrUnboundIndex.
func unboundErrorf(d *Dimension) error {
	return fmt.Errorf("dimension %q: %w", d.Name(), ErrUnboundIndex)
}
